package docx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPackage(t *testing.T) {
	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		wantErr bool
	}{
		{
			name:    "valid package",
			data:    func(t *testing.T) []byte { return buildDocx(t, defaultParts()) },
			wantErr: false,
		},
		{
			name:    "empty zip file",
			data:    func(t *testing.T) []byte { return buildDocx(t, nil) },
			wantErr: true,
		},
		{
			name:    "not a zip file",
			data:    func(*testing.T) []byte { return []byte("not a zip file") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data(t)
			p, err := OpenPackage(bytes.NewReader(data), int64(len(data)))
			if tt.wantErr {
				assert.Nil(t, p)
				assert.True(t, IsDocumentError(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, p.HasPart("word/document.xml"))
		})
	}
}

func TestPackagePart(t *testing.T) {
	p := openTestPackage(t, defaultParts())

	data, err := p.Part("word/media/image1.png")
	require.NoError(t, err)
	assert.Equal(t, testImage, data)

	_, err = p.Part("word/missing.xml")
	assert.ErrorIs(t, err, ErrPartNotFound)
	assert.True(t, IsDocumentError(err))
}

func TestPackageListPartsKeepsArchiveOrder(t *testing.T) {
	p := openTestPackage(t, defaultParts())
	p.SetPart("word/zz.xml", []byte("<z/>"))
	p.SetPart("word/aa.xml", []byte("<a/>"))
	p.SetPart("word/styles.xml", []byte("<s/>"))

	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/media/image1.png",
		"word/aa.xml",
		"word/zz.xml",
	}, p.ListParts())
}

func TestRelationshipsPartName(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"word/document.xml", "word/_rels/document.xml.rels"},
		{"word/header1.xml", "word/_rels/header1.xml.rels"},
		{"", "_rels/.rels"},
		{"doc.xml", "_rels/doc.xml.rels"},
	}
	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			assert.Equal(t, tt.want, RelationshipsPartName(tt.part))
		})
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		part   string
		target string
		want   string
	}{
		{"word/document.xml", "media/image1.png", "word/media/image1.png"},
		{"word/document.xml", "../customXml/item1.xml", "customXml/item1.xml"},
		{"word/document.xml", "/word/media/image2.png", "word/media/image2.png"},
		{"", "word/document.xml", "word/document.xml"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTarget(tt.part, tt.target))
		})
	}
}

func TestPackageRelationships(t *testing.T) {
	p := openTestPackage(t, defaultParts())

	rels, err := p.Relationships("word/document.xml")
	require.NoError(t, err)
	require.Len(t, rels, 3)
	assert.Equal(t, "styles.xml", rels[0].Target)
	assert.True(t, rels[2].External())

	root, err := p.Relationships("")
	require.NoError(t, err)
	require.Len(t, root, 1)
	assert.Equal(t, "word/document.xml", root[0].Target)

	none, err := p.Relationships("word/styles.xml")
	require.NoError(t, err)
	assert.Empty(t, none)

	rel, err := p.ResolveRelationship("word/document.xml", "rId5")
	require.NoError(t, err)
	assert.Equal(t, RelationshipTypeImage, rel.Type)
	assert.Equal(t, "media/image1.png", rel.Target)

	_, err = p.ResolveRelationship("word/document.xml", "rId99")
	assert.ErrorIs(t, err, ErrRelationshipNotFound)
}

func TestPackageRelationshipsMalformed(t *testing.T) {
	parts := append(defaultParts(), testPart{"word/_rels/header1.xml.rels", "<Relationships"})
	p := openTestPackage(t, parts)

	_, err := p.Relationships("word/header1.xml")
	assert.True(t, IsDocumentError(err))
}

func TestPackageWriteTo(t *testing.T) {
	p := openTestPackage(t, defaultParts())
	p.SetPart("word/styles.xml", []byte("<replaced/>"))
	p.SetPart("word/new.xml", []byte("<new/>"))

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	reopened, err := OpenPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	styles, err := reopened.Part("word/styles.xml")
	require.NoError(t, err)
	assert.Equal(t, "<replaced/>", string(styles))

	added, err := reopened.Part("word/new.xml")
	require.NoError(t, err)
	assert.Equal(t, "<new/>", string(added))

	image, err := reopened.Part("word/media/image1.png")
	require.NoError(t, err)
	assert.Equal(t, testImage, image)

	assert.Equal(t, p.ListParts(), reopened.ListParts())
}

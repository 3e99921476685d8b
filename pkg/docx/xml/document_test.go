package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBuilderRoundTrip(t *testing.T) {
	doc := NewDocument().
		Push(NewParagraph().AddText("Hello, world")).
		Push(NewTable(
			NewTableRow(
				NewTableCell(NewParagraph().AddText("A")),
				NewTableCell(),
			),
		))

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(xml.Header)))

	decoded, err := DecodeDocument(data)
	require.NoError(t, err)
	IntoOwned(decoded)
	assert.Equal(t, doc, decoded)
}

func TestDocumentEncodesNamespaces(t *testing.T) {
	data, err := Marshal(NewDocument())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `<w:document xmlns:w="`+NamespaceW+`"`)
	assert.Contains(t, out, `xmlns:r="`+NamespaceR+`"`)
	assert.Contains(t, out, `<w:body></w:body></w:document>`)
}

func TestDocumentNamespaces(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []xml.Attr
		expected map[string]string
	}{
		{
			name: "Literal prefixed form",
			attrs: []xml.Attr{
				{Name: xml.Name{Local: "xmlns:w"}, Value: "http://w"},
				{Name: xml.Name{Local: "xmlns:r"}, Value: "http://r"},
			},
			expected: map[string]string{"w": "http://w", "r": "http://r"},
		},
		{
			name: "Decoded form",
			attrs: []xml.Attr{
				{Name: xml.Name{Space: "xmlns", Local: "w14"}, Value: "http://w14"},
			},
			expected: map[string]string{"w14": "http://w14"},
		},
		{
			name: "Default namespace and plain attributes",
			attrs: []xml.Attr{
				{Name: xml.Name{Local: "xmlns"}, Value: "http://default"},
				{Name: xml.Name{Local: "mc:Ignorable"}, Value: "w14"},
			},
			expected: map[string]string{"": "http://default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Attrs: tt.attrs}
			assert.Equal(t, tt.expected, doc.Namespaces())
		})
	}
}

func TestDecodeDocumentPreservesRootAttributes(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + NamespaceW + `" xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml" xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006" mc:Ignorable="w14">
<w:body><w:p><w:r><w:t>Hi</w:t></w:r></w:p></w:body>
</w:document>`

	doc, err := DecodeDocument([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: NamespaceW},
		{Name: xml.Name{Local: "xmlns:w14"}, Value: "http://schemas.microsoft.com/office/word/2010/wordml"},
		{Name: xml.Name{Local: "xmlns:mc"}, Value: "http://schemas.openxmlformats.org/markup-compatibility/2006"},
		{Name: xml.Name{Local: "mc:Ignorable"}, Value: "w14"},
	}, doc.Attrs)

	out, err := Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `mc:Ignorable="w14"`)
	assert.Contains(t, string(out), `<w:p><w:r><w:t>Hi</w:t></w:r></w:p>`)
}

func TestDecodeDocumentDeclaresWrittenPrefixes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "other prefix",
			src: `<ns0:document xmlns:ns0="` + NamespaceW + `" xmlns:ns1="` + NamespaceR + `">` +
				`<ns0:body><ns0:p><ns0:hyperlink ns1:id="rId1"><ns0:r><ns0:t>hi</ns0:t></ns0:r></ns0:hyperlink></ns0:p></ns0:body></ns0:document>`,
		},
		{
			name: "default namespace",
			src: `<document xmlns="` + NamespaceW + `" xmlns:r="` + NamespaceR + `">` +
				`<body><p><hyperlink r:id="rId1"><r><t>hi</t></r></hyperlink></p></body></document>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.src))
			require.NoError(t, err)
			ns := doc.Namespaces()
			assert.Equal(t, NamespaceW, ns["w"])
			assert.Equal(t, NamespaceR, ns["r"])
			_, ok := ns["v"]
			assert.False(t, ok, "undeclared namespaces are not added")

			out, err := Marshal(doc)
			require.NoError(t, err)

			// Decode with name resolution to check that every prefix is bound.
			var again Document
			require.NoError(t, xml.Unmarshal(out, &again))
			assert.Equal(t, "hi", PlainText(&again))

			d := xml.NewDecoder(bytes.NewReader(out))
			for {
				tok, err := d.Token()
				if err != nil {
					break
				}
				if se, ok := tok.(xml.StartElement); ok {
					assert.Equal(t, NamespaceW, se.Name.Space, se.Name.Local)
				}
			}
		})
	}
}

func TestDecodeDocumentWithSection(t *testing.T) {
	src := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Body</w:t></w:r></w:p>` +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440.4" w:left="1440pt"/><w:cols w:space="720"/></w:sectPr>` +
		`</w:body></w:document>`

	doc, err := DecodeDocument([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Body.Content, 1)
	require.NotNil(t, doc.Body.SectionProperties)

	sect := doc.Body.SectionProperties
	require.NotNil(t, sect.PageSize)
	assert.Equal(t, 12240, *sect.PageSize.W)
	assert.Equal(t, 15840, *sect.PageSize.H)
	require.NotNil(t, sect.PageMargin)
	assert.Equal(t, 1440, *sect.PageMargin.Top)
	assert.Equal(t, 1440, *sect.PageMargin.Left)
	assert.Nil(t, sect.PageMargin.Gutter)
	require.NotNil(t, sect.Columns)
	assert.Equal(t, 720, *sect.Columns.Space)
	assert.Nil(t, sect.Columns.Num)
}

func TestSectionPropertiesRoundTrip(t *testing.T) {
	src := `<w:sectPr>` +
		`<w:pgSz w:w="12240" w:h="15840" w:orient="portrait"></w:pgSz>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"></w:pgMar>` +
		`<w:cols w:space="720"></w:cols>` +
		`</w:sectPr>`

	sect, err := Decode[SectionProperties]([]byte(src))
	require.NoError(t, err)

	out, err := xml.Marshal(sect)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unexpected root", `<w:body></w:body>`},
		{"truncated", `<w:document><w:body><w:p>`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.src))
			assert.Nil(t, doc)
			assert.True(t, IsDecodeError(err))
		})
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<w:document><w:body><w:p><w:r><w:t>Read</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	assert.Equal(t, "Read", PlainText(doc))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeDocumentWriteFailure(t *testing.T) {
	err := EncodeDocument(failingWriter{}, NewDocument())
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "document", ee.Element)
	assert.EqualError(t, ee.Err, "disk full")
}

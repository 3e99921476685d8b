package xml

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPictTolerance(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  Pict
		image *ImageData
	}{
		{
			name: "empty container",
			src:  `<w:pict></w:pict>`,
			want: Pict{},
		},
		{
			name: "shape without image",
			src:  `<w:pict><v:shape id="_x0000_s1025" style="width:10pt"></v:shape></w:pict>`,
			want: Pict{Shape: &Shape{ID: "_x0000_s1025", Style: "width:10pt"}},
		},
		{
			name:  "shape with image",
			src:   `<w:pict><v:shape><v:imagedata r:id="rId5" o:title="logo"></v:imagedata></v:shape></w:pict>`,
			want:  Pict{Shape: &Shape{ImageData: &ImageData{RelID: "rId5", Title: "logo"}}},
			image: &ImageData{RelID: "rId5", Title: "logo"},
		},
		{
			name:  "rect with image",
			src:   `<w:pict><v:rect><v:imagedata r:id="rId9"></v:imagedata></v:rect></w:pict>`,
			want:  Pict{Rect: &Rect{ImageData: &ImageData{RelID: "rId9"}}},
			image: &ImageData{RelID: "rId9"},
		},
		{
			name:  "empty imagedata",
			src:   `<w:pict><v:rect><v:imagedata></v:imagedata></v:rect></w:pict>`,
			want:  Pict{Rect: &Rect{ImageData: &ImageData{}}},
			image: &ImageData{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode[Pict]([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *p)
			assert.Equal(t, tt.image, p.ImageData())

			out, err := marshalString(p)
			require.NoError(t, err)
			assert.Equal(t, tt.src, out)
		})
	}
}

func TestPictDropsUnmodeledShapes(t *testing.T) {
	src := `<w:r><w:pict><v:shapetype id="_x0000_t75"/><v:shape><v:textbox><w:txbxContent/></v:textbox><v:imagedata r:id="rId3"/></v:shape></w:pict><w:t>after</w:t></w:r>`

	var dropped []string
	r, err := Decode[Run]([]byte(src), DecodeOptions{
		OnDrop: func(_, child xml.Name) { dropped = append(dropped, child.Local) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"shapetype", "textbox"}, dropped)

	require.Len(t, r.Content, 2)
	pict, ok := r.Content[0].(*Pict)
	require.True(t, ok)
	assert.Equal(t, "rId3", pict.ImageData().RelID)
	assert.Equal(t, "after", PlainText(r))
}

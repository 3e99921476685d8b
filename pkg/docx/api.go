package docx

import (
	"bytes"
	stdxml "encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx/xml"
)

// File is a DOCX package together with the decoded content tree of its main
// document part.
type File struct {
	Package  *Package
	Document *xml.Document

	config *Config
}

// Option represents a configuration option for Open and Load.
type Option func(*File)

// WithConfig returns an option that sets the configuration.
func WithConfig(config *Config) Option {
	return func(f *File) {
		f.config = config
	}
}

// Open loads the DOCX file at path.
func Open(path string, opts ...Option) (*File, error) {
	pkg, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	f, err := newFile(pkg, opts)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return f, nil
}

// Load reads a DOCX package from r.
func Load(r io.ReaderAt, size int64, opts ...Option) (*File, error) {
	pkg, err := OpenPackage(r, size)
	if err != nil {
		return nil, err
	}
	return newFile(pkg, opts)
}

func newFile(pkg *Package, opts []Option) (*File, error) {
	f := &File{Package: pkg, config: DefaultConfig()}
	for _, opt := range opts {
		opt(f)
	}
	if f.config == nil {
		f.config = DefaultConfig()
	}
	if err := f.config.Validate(); err != nil {
		return nil, err
	}

	part := f.config.DocumentPart
	src, err := pkg.Part(part)
	if err != nil {
		return nil, err
	}

	logger := Logger()
	doc, err := xml.DecodeDocument(src, xml.DecodeOptions{
		OnDrop: func(parent, child stdxml.Name) {
			logger.Debug("dropped unmodeled element",
				zap.String("part", part),
				zap.String("parent", parent.Local),
				zap.String("element", child.Local))
		},
	})
	if err != nil {
		return nil, NewDocumentError("parse", part, err)
	}
	if f.config.OwnText {
		xml.IntoOwned(doc)
	}
	f.Document = doc
	return f, nil
}

func (f *File) documentPart() string {
	if f.config == nil {
		return DefaultDocumentPart
	}
	return f.config.DocumentPart
}

// Replace applies dict to every text leaf of the document. See
// Replacer.Replace for the partial failure contract.
func (f *File) Replace(dict Dictionary) (int, error) {
	return ReplaceText(f.Document, dict)
}

// Texts yields the text leaves of the document in order.
func (f *File) Texts() iter.Seq[string] {
	return xml.Texts(f.Document)
}

// Text renders the visible text of the body: one line per paragraph, table
// rows as tab-separated cells.
func (f *File) Text() string {
	if f.Document == nil || f.Document.Body == nil {
		return ""
	}
	var lines []string
	for _, content := range f.Document.Body.Content {
		switch c := content.(type) {
		case *xml.Paragraph:
			lines = append(lines, c.GetText())
		case *xml.Table:
			for _, row := range c.Rows {
				cells := make([]string, 0, len(row.Cells))
				for i := range row.Cells {
					cells = append(cells, strings.ReplaceAll(row.Cells[i].GetText(), "\n", " "))
				}
				lines = append(lines, strings.Join(cells, "\t"))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Image is a picture referenced from the document through a legacy drawing.
type Image struct {
	RelID    string
	Title    string
	Target   string // part name, or the URL of an external image
	External bool
}

// Images resolves every v:imagedata reference of the document through the
// relationships of the main document part, in document order.
func (f *File) Images() ([]Image, error) {
	if f.Document == nil || f.Package == nil {
		return nil, nil
	}
	part := f.documentPart()
	rels, err := f.Package.Relationships(part)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Relationship, len(rels))
	for _, rel := range rels {
		byID[rel.ID] = rel
	}

	var images []Image
	for run := range xml.Runs(f.Document) {
		for _, content := range run.Content {
			pict, ok := content.(*xml.Pict)
			if !ok {
				continue
			}
			data := pict.ImageData()
			if data == nil || data.RelID == "" {
				continue
			}
			rel, ok := byID[data.RelID]
			if !ok {
				return images, NewDocumentError("resolve relationship", part, fmt.Errorf("%w: %s", ErrRelationshipNotFound, data.RelID))
			}
			img := Image{RelID: data.RelID, Title: data.Title, Target: rel.Target, External: rel.External()}
			if !img.External {
				img.Target = ResolveTarget(part, rel.Target)
			}
			images = append(images, img)
		}
	}
	return images, nil
}

// ImageData returns the bytes of an image part.
func (f *File) ImageData(img Image) ([]byte, error) {
	if img.External {
		return nil, NewDocumentError("read", img.Target, errors.New("image is linked, not embedded"))
	}
	return f.Package.Part(img.Target)
}

// Save encodes the document and writes the whole package to w.
func (f *File) Save(w io.Writer) error {
	part := f.documentPart()
	if f.Document == nil || f.Package == nil {
		return NewDocumentError("encode", part, errors.New("file has no document"))
	}
	var buf bytes.Buffer
	if err := xml.EncodeDocument(&buf, f.Document); err != nil {
		return NewDocumentError("encode", part, err)
	}
	f.Package.SetPart(part, buf.Bytes())
	_, err := f.Package.WriteTo(w)
	return err
}

// SaveFile saves the package to path.
func (f *File) SaveFile(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return NewDocumentError("save", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = NewDocumentError("save", path, cerr)
		}
	}()
	if err := f.Save(out); err != nil {
		return NewDocumentError("save", path, err)
	}
	return nil
}

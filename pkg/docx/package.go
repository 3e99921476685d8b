package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// RelationshipTypeImage is the relationship type of an embedded picture.
const RelationshipTypeImage = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

// Package is an opened DOCX container. Parts are read lazily from the zip
// archive; parts replaced with SetPart are kept in memory until WriteTo.
type Package struct {
	reader    *zip.Reader
	parts     map[string]*zip.File
	overrides map[string][]byte
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// External reports whether the target lies outside the package.
func (r Relationship) External() bool {
	return r.TargetMode == "External"
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// OpenPackage reads the zip directory of a DOCX package.
func OpenPackage(r io.ReaderAt, size int64) (*Package, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, NewDocumentError("open", "", fmt.Errorf("failed to read zip file: %w", err))
	}

	p := &Package{
		reader:    zipReader,
		parts:     make(map[string]*zip.File),
		overrides: make(map[string][]byte),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		p.parts[file.Name] = file
	}
	if len(p.parts) == 0 {
		return nil, NewDocumentError("open", "", fmt.Errorf("not a valid DOCX file: package is empty"))
	}

	Logger().Debug("package opened", zap.Int("parts", len(p.parts)))
	return p, nil
}

// OpenFile opens the DOCX package stored at path. The whole file is read
// into memory.
func OpenFile(path string) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	p, err := OpenPackage(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return p, nil
}

// HasPart reports whether the package holds a part named name.
func (p *Package) HasPart(name string) bool {
	if _, ok := p.overrides[name]; ok {
		return true
	}
	_, ok := p.parts[name]
	return ok
}

// Part retrieves the content of a specific part
func (p *Package) Part(name string) ([]byte, error) {
	if data, ok := p.overrides[name]; ok {
		return data, nil
	}

	file, ok := p.parts[name]
	if !ok {
		return nil, NewDocumentError("read", name, ErrPartNotFound)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewDocumentError("read", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewDocumentError("read", name, err)
	}

	return content, nil
}

// SetPart replaces or adds a part. The package keeps data; the caller must
// not modify it afterwards.
func (p *Package) SetPart(name string, data []byte) {
	p.overrides[name] = data
}

// ListParts returns the names of all parts in archive order, followed by
// parts added with SetPart in name order.
func (p *Package) ListParts() []string {
	names := make([]string, 0, len(p.parts)+len(p.overrides))
	for _, file := range p.reader.File {
		names = append(names, file.Name)
	}
	var added []string
	for name := range p.overrides {
		if _, ok := p.parts[name]; !ok {
			added = append(added, name)
		}
	}
	slices.Sort(added)
	return append(names, added...)
}

// RelationshipsPartName returns the name of the relationships part of part,
// e.g. "word/document.xml" -> "word/_rels/document.xml.rels".
func RelationshipsPartName(part string) string {
	dir, base := path.Split(part)
	return dir + "_rels/" + base + ".rels"
}

// Relationships retrieves relationships for a given part. A part without a
// relationships part has none.
func (p *Package) Relationships(part string) ([]Relationship, error) {
	relPath := RelationshipsPartName(part)
	if !p.HasPart(relPath) {
		return nil, nil
	}

	content, err := p.Part(relPath)
	if err != nil {
		return nil, err
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, NewDocumentError("parse relationships", relPath, err)
	}

	return rels.Relationship, nil
}

// ResolveRelationship looks up relationship id of part.
func (p *Package) ResolveRelationship(part, id string) (Relationship, error) {
	rels, err := p.Relationships(part)
	if err != nil {
		return Relationship{}, err
	}
	for _, rel := range rels {
		if rel.ID == id {
			return rel, nil
		}
	}
	return Relationship{}, NewDocumentError("resolve relationship", part, fmt.Errorf("%w: %s", ErrRelationshipNotFound, id))
}

// ResolveTarget returns the part name a relationship of part points to.
// Targets are relative to the directory of part unless they start with "/".
func ResolveTarget(part, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(part), target)
}

// WriteTo writes the package as a zip archive. Parts replaced with SetPart
// are written from memory; all other parts are copied without recompression.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, name := range p.ListParts() {
		if data, ok := p.overrides[name]; ok {
			fw, err := zw.Create(name)
			if err != nil {
				return cw.n, NewDocumentError("write", name, err)
			}
			if _, err := fw.Write(data); err != nil {
				return cw.n, NewDocumentError("write", name, err)
			}
			continue
		}
		if err := zw.Copy(p.parts[name]); err != nil {
			return cw.n, NewDocumentError("write", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, NewDocumentError("write", "", err)
	}
	Logger().Debug("package written",
		zap.Int64("bytes", cw.n),
		zap.Int("replaced", len(p.overrides)))
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

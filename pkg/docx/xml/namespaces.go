package xml

import (
	"encoding/xml"
	"strings"
)

// Namespace URIs of the prefixes this package writes.
const (
	NamespaceW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NamespaceV   = "urn:schemas-microsoft-com:vml"
	NamespaceO   = "urn:schemas-microsoft-com:office:office"
	NamespaceXML = "http://www.w3.org/XML/1998/namespace"
)

// prefixes maps namespace URIs to their conventional prefix.
var prefixes = map[string]string{
	NamespaceW:   "w",
	NamespaceR:   "r",
	NamespaceV:   "v",
	NamespaceO:   "o",
	NamespaceXML: "xml",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
}

// namespaceToPrefix converts a namespace URI to its conventional prefix.
// Unknown URIs are returned unchanged.
func namespaceToPrefix(uri string) string {
	if prefix, ok := prefixes[uri]; ok {
		return prefix
	}
	return uri
}

// DefaultNamespaces are the root declarations of a document built from scratch.
func DefaultNamespaces() []xml.Attr {
	return []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: NamespaceW},
		{Name: xml.Name{Local: "xmlns:r"}, Value: NamespaceR},
		{Name: xml.Name{Local: "xmlns:v"}, Value: NamespaceV},
		{Name: xml.Name{Local: "xmlns:o"}, Value: NamespaceO},
	}
}

// rootAttr rewrites a decoded root attribute to the literal prefixed form the
// encoder writes back verbatim.
func rootAttr(a xml.Attr) xml.Attr {
	switch a.Name.Space {
	case "":
		return a
	case "xmlns":
		return xml.Attr{Name: xml.Name{Local: "xmlns:" + a.Name.Local}, Value: a.Value}
	default:
		return xml.Attr{Name: xml.Name{Local: namespaceToPrefix(a.Name.Space) + ":" + a.Name.Local}, Value: a.Value}
	}
}

// Namespaces returns the prefix to URI declarations on the document root.
// The default namespace is returned under the empty prefix. Both the
// decoded (Space "xmlns") and the literal ("xmlns:w") forms are recognized.
func (doc *Document) Namespaces() map[string]string {
	ns := make(map[string]string)
	for _, a := range doc.Attrs {
		switch {
		case a.Name.Space == "xmlns":
			ns[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			ns[""] = a.Value
		case a.Name.Space == "" && strings.HasPrefix(a.Name.Local, "xmlns:"):
			ns[strings.TrimPrefix(a.Name.Local, "xmlns:")] = a.Value
		}
	}
	return ns
}

// modelNamespaces are the namespaces the encoder writes with literal prefixes.
var modelNamespaces = []string{NamespaceW, NamespaceR, NamespaceV, NamespaceO}

// declarePrefixes adds an xmlns:w style declaration for every model namespace
// the root binds only under another prefix or as the default namespace, so
// the prefixes written on encode resolve.
func (doc *Document) declarePrefixes() {
	ns := doc.Namespaces()
	bound := make(map[string]bool, len(ns))
	for _, uri := range ns {
		bound[uri] = true
	}
	for _, uri := range modelNamespaces {
		prefix := prefixes[uri]
		if _, declared := ns[prefix]; declared || !bound[uri] {
			continue
		}
		doc.Attrs = append(doc.Attrs, xml.Attr{Name: xml.Name{Local: "xmlns:" + prefix}, Value: uri})
	}
}

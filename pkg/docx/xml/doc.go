// Package xml provides the typed WordprocessingML content tree used by docxmodel.
//
// The tree is decoded from and encoded to the main document part of a DOCX
// package with encoding/xml. Only the shapes listed below are modeled; any
// other child element is skipped on decode (OnDrop reports it) and is not
// written back.
//
// # Structure Organization
//
//   - types.go: the sealed content interfaces (BodyContent, ParagraphContent,
//     RunContent, TableCellContent) and shared small elements
//   - text.go: Str, the borrowed-or-owned text storage of every text leaf
//   - decoder.go: the borrowing decoder and attribute helpers
//   - document.go, section.go: Document, Body and section properties
//   - paragraph.go, run.go: paragraphs, runs and run leaves
//   - revision.go: tracked insertions and deletions (w:ins, w:del)
//   - hyperlink.go: hyperlinks (w:hyperlink)
//   - pict.go: the shallow legacy drawing container (w:pict)
//   - table.go: tables, rows and cells
//   - walk.go: depth-first text traversal over any Node
//
// # Text ownership
//
// DecodeDocument and Decode parse a caller-supplied buffer. Text leaves whose
// raw bytes equal their decoded value are kept as zero-copy views into that
// buffer (Str.Borrowed reports true). A leaf becomes owned when it is changed
// through Str.Set or promoted with IntoOwned. Callers that reuse or modify the
// source buffer must call IntoOwned on the tree first.
//
// # Traversal
//
//	for text := range xml.Texts(doc) {
//	    fmt.Println(text)
//	}
//
//	for leaf := range xml.TextsMut(table) {
//	    _ = leaf.Set(strings.ToUpper(leaf.String()))
//	}
//
// # Building documents
//
//	doc := xml.NewDocument().
//	    Push(xml.NewParagraph().AddText("Hello, world!")).
//	    Push(xml.NewTable(
//	        xml.NewTableRow(
//	            xml.NewTableCell(xml.NewParagraph().AddText("A")),
//	            xml.NewTableCell(xml.NewParagraph().AddText("B")),
//	        ),
//	    ))
//
// # XML Namespaces
//
// Elements are written with the conventional prefixes (w, r, v, o). The
// document root carries the declarations; NewDocument installs
// DefaultNamespaces.
package xml

package xml

import (
	"iter"
	"strings"
)

// Texts yields the text of every leaf under n in document order: w:t and
// w:delText, including text inside insertions, deletions, hyperlinks and
// nested tables. The sequence is lazy; ranging again restarts it.
func Texts(n Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n == nil {
			return
		}
		n.walkText(func(s *Str) bool {
			return yield(s.String())
		})
	}
}

// TextsMut yields a pointer to every text leaf under n in the same order as
// Texts. Leaves may be changed through Str.Set while iterating; the shape of
// the tree must not be.
func TextsMut(n Node) iter.Seq[*Str] {
	return func(yield func(*Str) bool) {
		if n == nil {
			return
		}
		n.walkText(yield)
	}
}

// IntoOwned copies every borrowed leaf under n so the tree no longer
// references its source buffer.
func IntoOwned(n Node) {
	for s := range TextsMut(n) {
		s.IntoOwned()
	}
}

// PlainText concatenates every leaf under n.
func PlainText(n Node) string {
	var sb strings.Builder
	for text := range Texts(n) {
		sb.WriteString(text)
	}
	return sb.String()
}

// Every walkText returns false once yield has asked to stop.

func (doc *Document) walkText(yield func(*Str) bool) bool {
	if doc == nil || doc.Body == nil {
		return true
	}
	return doc.Body.walkText(yield)
}

func (b *Body) walkText(yield func(*Str) bool) bool {
	if b == nil {
		return true
	}
	for _, content := range b.Content {
		if !content.walkText(yield) {
			return false
		}
	}
	return true
}

func (p *Paragraph) walkText(yield func(*Str) bool) bool {
	for _, content := range p.Content {
		if !content.walkText(yield) {
			return false
		}
	}
	return true
}

func (t *Table) walkText(yield func(*Str) bool) bool {
	for i := range t.Rows {
		if !t.Rows[i].walkText(yield) {
			return false
		}
	}
	return true
}

func (r *TableRow) walkText(yield func(*Str) bool) bool {
	for i := range r.Cells {
		if !r.Cells[i].walkText(yield) {
			return false
		}
	}
	return true
}

func (c *TableCell) walkText(yield func(*Str) bool) bool {
	for _, content := range c.Content {
		if !content.walkText(yield) {
			return false
		}
	}
	return true
}

func (r *Run) walkText(yield func(*Str) bool) bool {
	for _, content := range r.Content {
		if !content.walkText(yield) {
			return false
		}
	}
	return true
}

func (i *Insertion) walkText(yield func(*Str) bool) bool {
	return walkRuns(i.Runs, yield)
}

func (d *Deletion) walkText(yield func(*Str) bool) bool {
	return walkRuns(d.Runs, yield)
}

func (h *Hyperlink) walkText(yield func(*Str) bool) bool {
	return walkRuns(h.Runs, yield)
}

func walkRuns(runs []Run, yield func(*Str) bool) bool {
	for i := range runs {
		if !runs[i].walkText(yield) {
			return false
		}
	}
	return true
}

func (t *Text) walkText(yield func(*Str) bool) bool {
	return yield(&t.Text)
}

func (t *DelText) walkText(yield func(*Str) bool) bool {
	return yield(&t.Text)
}

func (t *Tab) walkText(func(*Str) bool) bool            { return true }
func (b *Break) walkText(func(*Str) bool) bool          { return true }
func (c *CarriageReturn) walkText(func(*Str) bool) bool { return true }
func (p *Pict) walkText(func(*Str) bool) bool           { return true }

// Runs yields every run under n in document order, including runs inside
// revisions, hyperlinks and nested tables.
func Runs(n Node) iter.Seq[*Run] {
	return func(yield func(*Run) bool) {
		eachRun(n, yield)
	}
}

func eachRun(n Node, yield func(*Run) bool) bool {
	switch v := n.(type) {
	case *Document:
		if v != nil && v.Body != nil {
			return eachRun(v.Body, yield)
		}
	case *Body:
		if v == nil {
			return true
		}
		for _, content := range v.Content {
			if !eachRun(content, yield) {
				return false
			}
		}
	case *Paragraph:
		for _, content := range v.Content {
			if !eachRun(content, yield) {
				return false
			}
		}
	case *Table:
		for i := range v.Rows {
			if !eachRun(&v.Rows[i], yield) {
				return false
			}
		}
	case *TableRow:
		for i := range v.Cells {
			if !eachRun(&v.Cells[i], yield) {
				return false
			}
		}
	case *TableCell:
		for _, content := range v.Content {
			if !eachRun(content, yield) {
				return false
			}
		}
	case *Run:
		return yield(v)
	case *Insertion:
		return yieldRuns(v.Runs, yield)
	case *Deletion:
		return yieldRuns(v.Runs, yield)
	case *Hyperlink:
		return yieldRuns(v.Runs, yield)
	}
	return true
}

func yieldRuns(runs []Run, yield func(*Run) bool) bool {
	for i := range runs {
		if !yield(&runs[i]) {
			return false
		}
	}
	return true
}

package attr

// VMergeType is the value of w:vMerge/@w:val.
type VMergeType int

const (
	VMergeUnset VMergeType = iota
	VMergeRestart
	VMergeContinue
)

// VMerge is the codec for VMergeType.
var VMerge = NewEnum("vMerge", map[VMergeType]string{
	VMergeRestart:  "restart",
	VMergeContinue: "continue",
})

func (v VMergeType) String() string { return VMerge.Encode(v) }

// VerticalAlignType is the value of w:vAlign/@w:val.
type VerticalAlignType int

const (
	VerticalAlignUnset VerticalAlignType = iota
	VerticalAlignTop
	VerticalAlignCenter
	VerticalAlignBottom
	VerticalAlignBoth
)

// VerticalAlign is the codec for VerticalAlignType.
var VerticalAlign = NewEnum("vAlign", map[VerticalAlignType]string{
	VerticalAlignTop:    "top",
	VerticalAlignCenter: "center",
	VerticalAlignBottom: "bottom",
	VerticalAlignBoth:   "both",
})

func (v VerticalAlignType) String() string { return VerticalAlign.Encode(v) }

// JustificationType is the value of w:jc/@w:val.
type JustificationType int

const (
	JustificationUnset JustificationType = iota
	JustificationLeft
	JustificationCenter
	JustificationRight
	JustificationBoth
	JustificationStart
	JustificationEnd
	JustificationDistribute
)

// Justification is the codec for JustificationType.
var Justification = NewEnum("jc", map[JustificationType]string{
	JustificationLeft:       "left",
	JustificationCenter:     "center",
	JustificationRight:      "right",
	JustificationBoth:       "both",
	JustificationStart:      "start",
	JustificationEnd:        "end",
	JustificationDistribute: "distribute",
})

func (j JustificationType) String() string { return Justification.Encode(j) }

// BreakType is the value of w:br/@w:type.
type BreakType int

const (
	BreakUnset BreakType = iota
	BreakPage
	BreakColumn
	BreakTextWrapping
)

// Break is the codec for BreakType.
var Break = NewEnum("br", map[BreakType]string{
	BreakPage:         "page",
	BreakColumn:       "column",
	BreakTextWrapping: "textWrapping",
})

func (b BreakType) String() string { return Break.Encode(b) }

// LineRuleType is the value of w:spacing/@w:lineRule.
type LineRuleType int

const (
	LineRuleUnset LineRuleType = iota
	LineRuleAuto
	LineRuleExact
	LineRuleAtLeast
)

// LineRule is the codec for LineRuleType.
var LineRule = NewEnum("lineRule", map[LineRuleType]string{
	LineRuleAuto:    "auto",
	LineRuleExact:   "exact",
	LineRuleAtLeast: "atLeast",
})

func (l LineRuleType) String() string { return LineRule.Encode(l) }

// HeightRuleType is the value of w:trHeight/@w:hRule.
type HeightRuleType int

const (
	HeightRuleUnset HeightRuleType = iota
	HeightRuleAuto
	HeightRuleExact
	HeightRuleAtLeast
)

// HeightRule is the codec for HeightRuleType.
var HeightRule = NewEnum("hRule", map[HeightRuleType]string{
	HeightRuleAuto:    "auto",
	HeightRuleExact:   "exact",
	HeightRuleAtLeast: "atLeast",
})

func (h HeightRuleType) String() string { return HeightRule.Encode(h) }

// WidthType is the value of w:type on table and cell widths.
type WidthType int

const (
	WidthUnset WidthType = iota
	WidthAuto
	WidthDxa
	WidthPct
	WidthNil
)

// Width is the codec for WidthType.
var Width = NewEnum("width type", map[WidthType]string{
	WidthAuto: "auto",
	WidthDxa:  "dxa",
	WidthPct:  "pct",
	WidthNil:  "nil",
})

func (w WidthType) String() string { return Width.Encode(w) }

// TableLayoutType is the value of w:tblLayout/@w:type.
type TableLayoutType int

const (
	TableLayoutUnset TableLayoutType = iota
	TableLayoutFixed
	TableLayoutAutofit
)

// TableLayout is the codec for TableLayoutType.
var TableLayout = NewEnum("tblLayout", map[TableLayoutType]string{
	TableLayoutFixed:   "fixed",
	TableLayoutAutofit: "autofit",
})

func (t TableLayoutType) String() string { return TableLayout.Encode(t) }

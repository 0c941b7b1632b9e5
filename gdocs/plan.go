package gdocs

// Ranged pairs a formatting value with the half-open [Start, End)
// interval of the document it applies to. Indices are 1-based UTF-16
// code-unit offsets, matching the Docs API convention where index 1 is
// the start of the body.
type Ranged[T any] struct {
	Start int64
	End   int64
	Value T
}

// styleField marks which members of a style were actually supplied, so
// update requests never claim fields they did not set.
type styleField uint8

const (
	fieldBold styleField = 1 << iota
	fieldItalic
	fieldUnderline
	fieldFontSize
	fieldForegroundColor
	fieldNamedStyle
	fieldAlignment
)

// TextStyle is the inline formatting of a run of text. Only members
// whose bit is present in Set are meaningful.
type TextStyle struct {
	Bold       bool
	Italic     bool
	Underline  bool
	FontSizePt float64
	ColorHex   string // normalized "#RRGGBB"
	Set        styleField
}

// ParagraphStyle is the block formatting of one paragraph.
type ParagraphStyle struct {
	NamedStyle string // "HEADING_1".."HEADING_6"
	Alignment  string // "START", "CENTER", "END" or "JUSTIFIED"
	Set        styleField
}

// Bullet presets understood by the Docs API.
const (
	bulletPresetDisc    = "BULLET_DISC_CIRCLE_SQUARE"
	bulletPresetDecimal = "NUMBERED_DECIMAL_ALPHA_ROMAN"
)

// Plan is the compiled form of one document: the full body text plus the
// three independent collections of ranged formatting. It is built in one
// pass, never mutated afterwards, and consumed by Requests.
type Plan struct {
	FullText      string
	TextRuns      []Ranged[TextStyle]
	ParagraphRuns []Ranged[ParagraphStyle]
	ListRuns      []Ranged[string]
}

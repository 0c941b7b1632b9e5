package gdocs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Skuskusku13/app-google-auth/delta"
)

// The mappers below translate raw editor attribute values into the Docs
// formatting vocabulary. Each is total: an unrecognized value means "no
// mapping", never an error, and the corresponding field simply stays out
// of the style's field set.

func mapTextStyle(a delta.Attributes) TextStyle {
	var ts TextStyle
	if a.Bold != nil {
		ts.Bold = *a.Bold
		ts.Set |= fieldBold
	}
	if a.Italic != nil {
		ts.Italic = *a.Italic
		ts.Set |= fieldItalic
	}
	if a.Underline != nil {
		ts.Underline = *a.Underline
		ts.Set |= fieldUnderline
	}
	if pt, ok := mapFontSize(a.Size); ok {
		ts.FontSizePt = pt
		ts.Set |= fieldFontSize
	}
	if hex, ok := normalizeColor(a.Color); ok {
		ts.ColorHex = hex
		ts.Set |= fieldForegroundColor
	}
	return ts
}

func mapParagraphStyle(header, align string) ParagraphStyle {
	var ps ParagraphStyle
	if style, ok := mapHeader(header); ok {
		ps.NamedStyle = style
		ps.Set |= fieldNamedStyle
	}
	if al, ok := mapAlignment(align); ok {
		ps.Alignment = al
		ps.Set |= fieldAlignment
	}
	return ps
}

// mapHeader translates a header level (1-6, numeric or textual) into a
// Docs named style.
func mapHeader(v string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > 6 {
		return "", false
	}
	return fmt.Sprintf("HEADING_%d", n), true
}

func mapAlignment(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left":
		return "START", true
	case "center":
		return "CENTER", true
	case "right":
		return "END", true
	case "justify":
		return "JUSTIFIED", true
	}
	return "", false
}

func mapListPreset(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "bullet":
		return bulletPresetDisc, true
	case "ordered":
		return bulletPresetDecimal, true
	}
	return "", false
}

// CSS pixel to typographic point.
const pxToPt = 0.75

// mapFontSize converts a size attribute to points. The editor's default
// themes use the keywords small/large/huge; configurations with explicit
// sizes send strings like "18px"; bare numbers pass through as points.
func mapFontSize(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	switch strings.ToLower(v) {
	case "small":
		return 10, true
	case "large":
		return 16, true
	case "huge":
		return 22, true
	}
	if px, ok := strings.CutSuffix(strings.ToLower(v), "px"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(px), 64)
		if err != nil {
			return 0, false
		}
		return n * pxToPt, true
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// normalizeColor accepts "#RRGGBB" (any case) or "rgb(r, g, b)" and
// returns the color as uppercase "#RRGGBB". Channels in rgb() form are
// clamped to [0, 255].
func normalizeColor(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		if len(v) != 7 {
			return "", false
		}
		for i := 1; i < len(v); i++ {
			if !isHexDigit(v[i]) {
				return "", false
			}
		}
		return strings.ToUpper(v), true
	}

	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		parts := strings.Split(lower[4:len(lower)-1], ",")
		if len(parts) != 3 {
			return "", false
		}
		var ch [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return "", false
			}
			if n < 0 {
				n = 0
			}
			if n > 255 {
				n = 255
			}
			ch[i] = n
		}
		return fmt.Sprintf("#%02X%02X%02X", ch[0], ch[1], ch[2]), true
	}

	return "", false
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

package gdocs

import (
	"strconv"
	"strings"

	"google.golang.org/api/docs/v1"
)

// Requests flattens a plan into the ordered request list for a single
// batchUpdate call: one InsertText carrying the whole body, then the
// paragraph-style updates, then bullet creation, then the text-style
// updates. Paragraph and bullet requests must come before text styling:
// applying a named paragraph style resets inline styling inside its
// range, so the inline updates have to land last.
func Requests(plan *Plan) []*docs.Request {
	reqs := []*docs.Request{{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: 1},
			Text:     plan.FullText,
		},
	}}

	for _, r := range plan.ParagraphRuns {
		if req := paragraphStyleRequest(r); req != nil {
			reqs = append(reqs, req)
		}
	}
	for _, r := range plan.ListRuns {
		reqs = append(reqs, &docs.Request{
			CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
				Range:        &docs.Range{StartIndex: r.Start, EndIndex: r.End},
				BulletPreset: r.Value,
			},
		})
	}
	for _, r := range plan.TextRuns {
		if req := textStyleRequest(r); req != nil {
			reqs = append(reqs, req)
		}
	}

	return reqs
}

// paragraphStyleRequest builds the update for one paragraph range, or
// nil when nothing mapped; a paragraph with default styling gets no
// request at all rather than an explicit NORMAL_TEXT.
func paragraphStyleRequest(r Ranged[ParagraphStyle]) *docs.Request {
	if r.Value.Set == 0 {
		return nil
	}

	style := &docs.ParagraphStyle{}
	var fields []string
	if r.Value.Set&fieldNamedStyle != 0 {
		style.NamedStyleType = r.Value.NamedStyle
		fields = append(fields, "namedStyleType")
	}
	if r.Value.Set&fieldAlignment != 0 {
		style.Alignment = r.Value.Alignment
		fields = append(fields, "alignment")
	}

	return &docs.Request{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          &docs.Range{StartIndex: r.Start, EndIndex: r.End},
			ParagraphStyle: style,
			Fields:         strings.Join(fields, ","),
		},
	}
}

func textStyleRequest(r Ranged[TextStyle]) *docs.Request {
	v := r.Value
	if v.Set == 0 {
		return nil
	}

	style := &docs.TextStyle{}
	var fields []string
	if v.Set&fieldBold != 0 {
		style.Bold = v.Bold
		if !v.Bold {
			style.ForceSendFields = append(style.ForceSendFields, "Bold")
		}
		fields = append(fields, "bold")
	}
	if v.Set&fieldItalic != 0 {
		style.Italic = v.Italic
		if !v.Italic {
			style.ForceSendFields = append(style.ForceSendFields, "Italic")
		}
		fields = append(fields, "italic")
	}
	if v.Set&fieldUnderline != 0 {
		style.Underline = v.Underline
		if !v.Underline {
			style.ForceSendFields = append(style.ForceSendFields, "Underline")
		}
		fields = append(fields, "underline")
	}
	if v.Set&fieldFontSize != 0 {
		style.FontSize = &docs.Dimension{Magnitude: v.FontSizePt, Unit: "PT"}
		fields = append(fields, "fontSize")
	}
	if v.Set&fieldForegroundColor != 0 {
		style.ForegroundColor = &docs.OptionalColor{
			Color: &docs.Color{RgbColor: rgbColor(v.ColorHex)},
		}
		fields = append(fields, "foregroundColor")
	}

	return &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     &docs.Range{StartIndex: r.Start, EndIndex: r.End},
			TextStyle: style,
			Fields:    strings.Join(fields, ","),
		},
	}
}

// rgbColor converts a normalized "#RRGGBB" value into the fractional
// channel triple the API expects. The division by 255 is exact float64
// arithmetic; zero channels are force-sent so the wire form always
// carries all three.
func rgbColor(hex string) *docs.RgbColor {
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return &docs.RgbColor{
		Red:             float64(r) / 255,
		Green:           float64(g) / 255,
		Blue:            float64(b) / 255,
		ForceSendFields: []string{"Red", "Green", "Blue"},
	}
}

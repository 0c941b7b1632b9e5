package gdocs

import (
	"errors"
	"strings"

	"github.com/Skuskusku13/app-google-auth/delta"
)

// ErrInvalidContent reports that the operation log contained no text at
// all. Callers holding an HTML rendering of the same content recover by
// falling back to CompileHTML.
var ErrInvalidContent = errors.New("gdocs: content is empty")

// blockAttrs accumulates the paragraph-level attributes seen on any
// operation contributing to the current line. The editor usually places
// them on the newline operation that closes the line, but some clients
// attach them to the text itself; either way the paragraph picks them up.
type blockAttrs struct {
	header string
	align  string
	list   string
}

func (b *blockAttrs) absorb(a delta.Attributes) {
	if a.Header != "" {
		b.header = a.Header
	}
	if a.Align != "" {
		b.align = a.Align
	}
	if a.List != "" {
		b.list = a.List
	}
}

// Compile walks an ordered operation log and assembles the formatting
// plan: the concatenated body text, one text-style range per styled run,
// one paragraph-style range per line, and one list range per line that
// belongs to a list. The resulting text always ends with a newline; one
// is synthesized when the source stops mid-line, closed by a paragraph
// range with no attributes.
func Compile(ops []delta.Op) (*Plan, error) {
	var (
		sb    strings.Builder
		cur   = newCursor()
		plan  = &Plan{}
		block blockAttrs
	)
	paraStart := cur.pos

	for _, op := range ops {
		if op.Insert == "" {
			continue
		}
		for _, seg := range splitKeepNewlines(op.Insert) {
			if seg == "\n" {
				sb.WriteString(seg)
				cur.advance(seg)

				block.absorb(op.Attributes)
				plan.ParagraphRuns = append(plan.ParagraphRuns, Ranged[ParagraphStyle]{
					Start: paraStart,
					End:   cur.pos,
					Value: mapParagraphStyle(block.header, block.align),
				})
				if preset, ok := mapListPreset(block.list); ok {
					plan.ListRuns = append(plan.ListRuns, Ranged[string]{
						Start: paraStart,
						End:   cur.pos,
						Value: preset,
					})
				}
				paraStart = cur.pos
				block = blockAttrs{}
				continue
			}

			start := cur.pos
			n := cur.advance(seg)
			sb.WriteString(seg)
			block.absorb(op.Attributes)
			if op.Attributes.HasInline() {
				plan.TextRuns = append(plan.TextRuns, Ranged[TextStyle]{
					Start: start,
					End:   start + n,
					Value: mapTextStyle(op.Attributes),
				})
			}
		}
	}

	if sb.Len() == 0 {
		return nil, ErrInvalidContent
	}

	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
		cur.advance("\n")
		plan.ParagraphRuns = append(plan.ParagraphRuns, Ranged[ParagraphStyle]{
			Start: paraStart,
			End:   cur.pos,
		})
	}

	plan.FullText = sb.String()
	return plan, nil
}

// splitKeepNewlines splits s so that every newline becomes its own
// segment; "a\nb" yields ["a", "\n", "b"].
func splitKeepNewlines(s string) []string {
	var segs []string
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			if s != "" {
				segs = append(segs, s)
			}
			return segs
		}
		if i > 0 {
			segs = append(segs, s[:i])
		}
		segs = append(segs, "\n")
		s = s[i+1:]
	}
}

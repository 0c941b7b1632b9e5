// Package delta models the insert-operation log produced by the Quill
// rich-text editor and decodes it from its JSON wire form.
package delta

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// Op is a single entry in the editor's operation log: a chunk of text to
// insert plus the formatting attributes active at insertion time.
type Op struct {
	Insert     string
	Attributes Attributes
}

// Attributes holds the recognized formatting attributes of an insert
// operation. Pointer booleans distinguish "absent" from an explicit
// false. Header, Size and the other string fields keep the raw editor
// value; translating them into the Docs vocabulary happens downstream.
type Attributes struct {
	Bold      *bool
	Italic    *bool
	Underline *bool
	Color     string
	Size      string
	Header    string
	Align     string
	List      string
}

// HasInline reports whether the operation carries any recognized inline
// attribute, mapped or not.
func (a Attributes) HasInline() bool {
	return a.Bold != nil || a.Italic != nil || a.Underline != nil ||
		a.Color != "" || a.Size != ""
}

// ErrMalformedSource reports that the delta document was not parseable
// as structured data at all.
var ErrMalformedSource = errors.New("delta: malformed source")

// ParseOps decodes a delta document, either the usual {"ops": [...]}
// envelope or a bare operation array. Decoding is deliberately tolerant:
// operations whose insert payload is not a string (image and video
// embeds) are skipped, and unknown attribute keys are ignored, so that
// richer editor configurations still produce their textual content.
func ParseOps(raw string) ([]Op, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !gjson.Valid(raw) {
		return nil, ErrMalformedSource
	}

	doc := gjson.Parse(raw)
	ops := doc.Get("ops")
	if !ops.Exists() {
		if !doc.IsArray() {
			return nil, ErrMalformedSource
		}
		ops = doc
	}
	if !ops.IsArray() {
		return nil, ErrMalformedSource
	}

	var out []Op
	ops.ForEach(func(_, item gjson.Result) bool {
		ins := item.Get("insert")
		if ins.Type != gjson.String {
			return true
		}
		out = append(out, Op{
			Insert:     ins.String(),
			Attributes: parseAttributes(item.Get("attributes")),
		})
		return true
	})
	return out, nil
}

func parseAttributes(res gjson.Result) Attributes {
	var a Attributes
	if !res.IsObject() {
		return a
	}

	if v := res.Get("bold"); v.Exists() {
		b := v.Bool()
		a.Bold = &b
	}
	if v := res.Get("italic"); v.Exists() {
		b := v.Bool()
		a.Italic = &b
	}
	if v := res.Get("underline"); v.Exists() {
		b := v.Bool()
		a.Underline = &b
	}
	if v := res.Get("color"); v.Type == gjson.String {
		a.Color = v.String()
	}
	// Size and header may arrive as numbers or strings depending on the
	// editor configuration; keep the textual form either way.
	if v := res.Get("size"); v.Exists() {
		a.Size = v.String()
	}
	if v := res.Get("header"); v.Exists() {
		a.Header = v.String()
	}
	if v := res.Get("align"); v.Type == gjson.String {
		a.Align = v.String()
	}
	if v := res.Get("list"); v.Type == gjson.String {
		a.List = v.String()
	}
	return a
}

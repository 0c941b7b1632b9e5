package gdocs

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Skuskusku13/app-google-auth/delta"
)

// CompileHTML builds a plan from an HTML rendering of the content. It is
// the lower-fidelity fallback used when the delta source is absent or
// unusable: malformed markup is tolerated, and markup with no text
// yields an empty plan rather than an error.
func CompileHTML(markup string) *Plan {
	plan, err := Compile(ParseHTML(markup))
	if err != nil {
		return &Plan{}
	}
	return plan
}

// ParseHTML flattens a markup tree into the insert operations the rich
// editor would have produced for the same content: text segments carry
// the inline styles inherited from enclosing elements, and each closed
// block element contributes a newline segment carrying the block's
// paragraph attributes.
func ParseHTML(markup string) []delta.Op {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	w := &htmlWalker{}
	w.walk(root, htmlState{})
	return w.ops
}

// htmlState is the formatting inherited from enclosing elements. Every
// recursive call receives its own copy, so a style set inside one
// subtree never leaks into a sibling.
type htmlState struct {
	bold      bool
	italic    bool
	underline bool
	color     string
	header    int
}

func (st htmlState) inlineAttrs() delta.Attributes {
	var a delta.Attributes
	if st.bold {
		a.Bold = boolTrue()
	}
	if st.italic {
		a.Italic = boolTrue()
	}
	if st.underline {
		a.Underline = boolTrue()
	}
	a.Color = st.color
	return a
}

func boolTrue() *bool {
	b := true
	return &b
}

type htmlWalker struct {
	ops []delta.Op
}

var htmlControlWS = regexp.MustCompile(`[\t\r\n]+`)

func (w *htmlWalker) walk(n *html.Node, st htmlState) {
	switch n.Type {
	case html.TextNode:
		text := htmlControlWS.ReplaceAllString(n.Data, " ")
		if strings.TrimSpace(text) == "" {
			return
		}
		w.ops = append(w.ops, delta.Op{Insert: text, Attributes: st.inlineAttrs()})
		return

	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head":
			return
		case "br":
			w.ops = append(w.ops, delta.Op{Insert: "\n"})
			return
		case "b", "strong":
			st.bold = true
		case "i", "em":
			st.italic = true
		case "u":
			st.underline = true
		case "h1":
			st.header = 1
		case "h2":
			st.header = 2
		case "h3":
			st.header = 3
		case "p", "div":
			st.header = 0
		}
		if hex, ok := styleAttrColor(n); ok {
			st.color = hex
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, st)
	}

	if n.Type == html.ElementNode && isBlockTag(n.Data) {
		w.closeBlock(st)
	}
}

func isBlockTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "p", "div":
		return true
	}
	return false
}

// closeBlock emits the newline that terminates a block element, tagged
// with the block's paragraph attributes. Blocks that produced no text
// since the last boundary are collapsed instead of stacking empty
// paragraphs (a div wrapping a p would otherwise double every newline).
func (w *htmlWalker) closeBlock(st htmlState) {
	if len(w.ops) == 0 {
		return
	}
	if strings.HasSuffix(w.ops[len(w.ops)-1].Insert, "\n") {
		return
	}
	op := delta.Op{Insert: "\n"}
	if st.header > 0 {
		op.Attributes.Header = strconv.Itoa(st.header)
	}
	w.ops = append(w.ops, op)
}

// styleAttrColor extracts a usable color declaration from an inline
// style attribute, in either hex or rgb() form.
func styleAttrColor(n *html.Node) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		for _, decl := range strings.Split(attr.Val, ";") {
			name, value, ok := strings.Cut(decl, ":")
			if !ok || strings.TrimSpace(strings.ToLower(name)) != "color" {
				continue
			}
			if hex, ok := normalizeColor(strings.TrimSpace(value)); ok {
				return hex, true
			}
		}
	}
	return "", false
}

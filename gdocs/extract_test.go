package gdocs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Skuskusku13/app-google-auth/delta"
)

func boolp(b bool) *bool { return &b }

func TestCompile_RoundTrip(t *testing.T) {
	ops := []delta.Op{
		{Insert: "Hello ", Attributes: delta.Attributes{Bold: boolp(true)}},
		{Insert: "World", Attributes: delta.Attributes{Italic: boolp(true), Color: "#FF0000"}},
		{Insert: "\n"},
	}

	plan, err := Compile(ops)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if plan.FullText != "Hello World\n" {
		t.Fatalf("FullText=%q, want %q", plan.FullText, "Hello World\n")
	}

	wantText := []Ranged[TextStyle]{
		{Start: 1, End: 7, Value: TextStyle{Bold: true, Set: fieldBold}},
		{Start: 7, End: 12, Value: TextStyle{Italic: true, ColorHex: "#FF0000", Set: fieldItalic | fieldForegroundColor}},
	}
	if diff := cmp.Diff(wantText, plan.TextRuns); diff != "" {
		t.Fatalf("TextRuns mismatch (-want +got):\n%s", diff)
	}

	if len(plan.ParagraphRuns) != 1 {
		t.Fatalf("len(ParagraphRuns)=%d, want 1", len(plan.ParagraphRuns))
	}
	para := plan.ParagraphRuns[0]
	if para.Start != 1 || para.End != 13 {
		t.Fatalf("paragraph range [%d,%d), want [1,13)", para.Start, para.End)
	}
	if para.Value.Set != 0 {
		t.Fatalf("paragraph should have no mapped attributes, got %+v", para.Value)
	}
	if len(plan.ListRuns) != 0 {
		t.Fatalf("unexpected list runs: %+v", plan.ListRuns)
	}
}

func TestCompile_HeaderOnTextOperation(t *testing.T) {
	// Some clients put block attributes on the text rather than the
	// newline; the paragraph must still pick them up.
	ops := []delta.Op{
		{Insert: "Title", Attributes: delta.Attributes{Header: "1", Bold: boolp(true)}},
		{Insert: "\n"},
	}

	plan, err := Compile(ops)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if len(plan.ParagraphRuns) != 1 {
		t.Fatalf("len(ParagraphRuns)=%d, want 1", len(plan.ParagraphRuns))
	}
	para := plan.ParagraphRuns[0]
	if para.Start != 1 || para.End != 7 {
		t.Fatalf("paragraph range [%d,%d), want [1,7)", para.Start, para.End)
	}
	if para.Value.NamedStyle != "HEADING_1" || para.Value.Set&fieldNamedStyle == 0 {
		t.Fatalf("unexpected paragraph style: %+v", para.Value)
	}

	if len(plan.TextRuns) != 1 {
		t.Fatalf("len(TextRuns)=%d, want 1", len(plan.TextRuns))
	}
	run := plan.TextRuns[0]
	if run.Start != 1 || run.End != 6 || !run.Value.Bold {
		t.Fatalf("unexpected text run: %+v", run)
	}
}

func TestCompile_BlockAttributesOnNewline(t *testing.T) {
	ops := []delta.Op{
		{Insert: "centered"},
		{Insert: "\n", Attributes: delta.Attributes{Align: "center"}},
	}

	plan, err := Compile(ops)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	para := plan.ParagraphRuns[0]
	if para.Value.Alignment != "CENTER" || para.Value.Set&fieldAlignment == 0 {
		t.Fatalf("unexpected paragraph style: %+v", para.Value)
	}
}

func TestCompile_Lists(t *testing.T) {
	ops := []delta.Op{
		{Insert: "one"},
		{Insert: "\n", Attributes: delta.Attributes{List: "bullet"}},
		{Insert: "two"},
		{Insert: "\n", Attributes: delta.Attributes{List: "ordered"}},
	}

	plan, err := Compile(ops)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	want := []Ranged[string]{
		{Start: 1, End: 5, Value: bulletPresetDisc},
		{Start: 5, End: 9, Value: bulletPresetDecimal},
	}
	if diff := cmp.Diff(want, plan.ListRuns); diff != "" {
		t.Fatalf("ListRuns mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_AppendsTrailingNewline(t *testing.T) {
	plan, err := Compile([]delta.Op{{Insert: "No newline at all"}})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if plan.FullText != "No newline at all\n" {
		t.Fatalf("FullText=%q", plan.FullText)
	}
	if len(plan.ParagraphRuns) != 1 {
		t.Fatalf("len(ParagraphRuns)=%d, want 1", len(plan.ParagraphRuns))
	}
	para := plan.ParagraphRuns[0]
	if para.Start != 1 || para.End != 19 || para.Value.Set != 0 {
		t.Fatalf("unexpected trailing paragraph range: %+v", para)
	}
}

func TestCompile_EmptyContent(t *testing.T) {
	for _, ops := range [][]delta.Op{
		nil,
		{{Insert: "", Attributes: delta.Attributes{Bold: boolp(true)}}},
	} {
		if _, err := Compile(ops); !errors.Is(err, ErrInvalidContent) {
			t.Fatalf("Compile(%+v) error=%v, want ErrInvalidContent", ops, err)
		}
	}
}

func TestCompile_SurrogatePairPositions(t *testing.T) {
	ops := []delta.Op{
		{Insert: "𝄞x", Attributes: delta.Attributes{Bold: boolp(true)}},
		{Insert: "\n"},
	}

	plan, err := Compile(ops)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	run := plan.TextRuns[0]
	if run.Start != 1 || run.End != 4 {
		t.Fatalf("text run [%d,%d), want [1,4)", run.Start, run.End)
	}
	if para := plan.ParagraphRuns[0]; para.End != 5 {
		t.Fatalf("paragraph end=%d, want 5", para.End)
	}
}

func TestSplitKeepNewlines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a\nb", []string{"a", "\n", "b"}},
		{"\n\n", []string{"\n", "\n"}},
		{"abc", []string{"abc"}},
		{"abc\n", []string{"abc", "\n"}},
		{"", nil},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, splitKeepNewlines(c.in)); diff != "" {
			t.Fatalf("splitKeepNewlines(%q) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

package gdocs

import "testing"

func TestUtf16Len(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"Hi", 2},
		{"é", 1},
		{"𝄞", 2},  // outside the BMP: surrogate pair
		{"a𝄞b", 4},
	}
	for _, c := range cases {
		if got := utf16Len(c.in); got != c.want {
			t.Fatalf("utf16Len(%q)=%d, want %d", c.in, got, c.want)
		}
	}
}

func TestCursor_AdvanceIsMonotonic(t *testing.T) {
	cur := newCursor()
	if cur.pos != 1 {
		t.Fatalf("initial pos=%d, want 1", cur.pos)
	}
	if n := cur.advance("ab"); n != 2 {
		t.Fatalf("advance returned %d, want 2", n)
	}
	if cur.pos != 3 {
		t.Fatalf("pos=%d, want 3", cur.pos)
	}
	if n := cur.advance(""); n != 0 || cur.pos != 3 {
		t.Fatalf("empty advance: n=%d pos=%d", n, cur.pos)
	}
	cur.advance("𝄞")
	if cur.pos != 5 {
		t.Fatalf("pos=%d after surrogate pair, want 5", cur.pos)
	}
}

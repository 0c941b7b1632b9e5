package delta

import (
	"errors"
	"testing"
)

func TestParseOps_Envelope(t *testing.T) {
	ops, err := ParseOps(`{"ops":[{"insert":"Hello","attributes":{"bold":true}},{"insert":"\n"}]}`)
	if err != nil {
		t.Fatalf("ParseOps() error: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("len(ops)=%d, want 2", len(ops))
	}
	if ops[0].Insert != "Hello" {
		t.Fatalf("Insert=%q, want %q", ops[0].Insert, "Hello")
	}
	if ops[0].Attributes.Bold == nil || !*ops[0].Attributes.Bold {
		t.Fatalf("expected bold attribute, got %+v", ops[0].Attributes)
	}
	if ops[1].Attributes.HasInline() {
		t.Fatalf("newline op should carry no inline attributes")
	}
}

func TestParseOps_BareArray(t *testing.T) {
	ops, err := ParseOps(`[{"insert":"x"}]`)
	if err != nil {
		t.Fatalf("ParseOps() error: %v", err)
	}
	if len(ops) != 1 || ops[0].Insert != "x" {
		t.Fatalf("unexpected ops: %+v", ops)
	}
}

func TestParseOps_SkipsEmbeds(t *testing.T) {
	ops, err := ParseOps(`{"ops":[{"insert":{"image":"data:..."}},{"insert":"after"}]}`)
	if err != nil {
		t.Fatalf("ParseOps() error: %v", err)
	}
	if len(ops) != 1 || ops[0].Insert != "after" {
		t.Fatalf("expected embed skipped, got %+v", ops)
	}
}

func TestParseOps_NumericAttributeValues(t *testing.T) {
	ops, err := ParseOps(`{"ops":[{"insert":"T","attributes":{"header":2,"size":18}}]}`)
	if err != nil {
		t.Fatalf("ParseOps() error: %v", err)
	}
	if got := ops[0].Attributes.Header; got != "2" {
		t.Fatalf("Header=%q, want %q", got, "2")
	}
	if got := ops[0].Attributes.Size; got != "18" {
		t.Fatalf("Size=%q, want %q", got, "18")
	}
}

func TestParseOps_Malformed(t *testing.T) {
	for _, raw := range []string{"", "{not json", `{"foo":1}`, `"just a string"`} {
		if _, err := ParseOps(raw); !errors.Is(err, ErrMalformedSource) {
			t.Fatalf("ParseOps(%q) error=%v, want ErrMalformedSource", raw, err)
		}
	}
}

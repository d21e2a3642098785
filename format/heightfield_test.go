package format

import (
	"strings"
	"testing"
)

func TestParseHeightfieldRowsCols(t *testing.T) {
	hf, err := ParseHeightfield(strings.NewReader("2 3\n-1 0 1 0.5 -0.5 0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hf.Rows != 2 || hf.Cols != 3 {
		t.Fatalf("dims = %d,%d want 2,3", hf.Rows, hf.Cols)
	}
	if len(hf.Heights) != 6 {
		t.Fatalf("len(Heights) = %d want 6", len(hf.Heights))
	}
	if hf.Heights[0] != -32767 {
		t.Fatalf("Heights[0] = %d want -32767", hf.Heights[0])
	}
	if hf.Heights[2] != 32767 {
		t.Fatalf("Heights[2] = %d want 32767", hf.Heights[2])
	}
}

func TestParseHeightfieldRejectsOutOfRange(t *testing.T) {
	_, err := ParseHeightfield(strings.NewReader("1 1\n2.0\n"))
	if err == nil {
		t.Fatalf("expected error for out-of-range height")
	}
}

func TestParseHeightfieldRejectsTruncated(t *testing.T) {
	_, err := ParseHeightfield(strings.NewReader("2 2\n0 0\n"))
	if err == nil {
		t.Fatalf("expected error for truncated heights")
	}
}

package respid

import (
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	numeric := []string{"0", "001", "+12", "-5", "123456789012345678901234567890"}
	for _, id := range numeric {
		if !IsNumeric(id) {
			t.Fatalf("expected %q to be numeric", id)
		}
	}
	other := []string{"", "+", "-", "a1", "1a", " 1", "1.0", "1_000", "0x10", " 7", "7 ", "\t7", "1_0", "+ 7"}
	for _, id := range other {
		if IsNumeric(id) {
			t.Fatalf("expected %q to be non-numeric", id)
		}
	}
}

func TestPad(t *testing.T) {
	tests := map[string]string{
		"7":    "007",
		"001":  "001",
		"010":  "010",
		"+12":  "012",
		"-5":   "-05",
		"1234": "1234",
		"0":    "000",
	}
	for in, want := range tests {
		got, ok := Pad(in)
		if !ok {
			t.Fatalf("Pad(%q) reported non-numeric", in)
		}
		if got != want {
			t.Fatalf("Pad(%q) = %q, want %q", in, got, want)
		}
	}
	if _, ok := Pad("abc"); ok {
		t.Fatal("expected Pad to reject non-numeric id")
	}
}

func TestPaddedOrSpacedIDsStayText(t *testing.T) {
	for _, id := range []string{" 7", "7 ", "1_0"} {
		if got, ok := Pad(id); ok {
			t.Fatalf("Pad(%q) = %q, want text id left alone", id, got)
		}
		if !Less("10", id) {
			t.Fatalf("expected numeric 10 to sort before %q", id)
		}
		if Less(id, "10") {
			t.Fatalf("expected %q to sort after numeric 10", id)
		}
	}
	if !Less(" 7", "1_0") || !Less("1_0", "7 ") {
		t.Fatal("text ids should order by code point")
	}
}

func TestLessOrdersNumericFirst(t *testing.T) {
	ids := []string{"002", "1", "010", "b", "a"}
	sort.SliceStable(ids, func(i, j int) bool { return Less(ids[i], ids[j]) })
	want := []string{"1", "002", "010", "a", "b"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", ids, want)
		}
	}
}

func TestLessBreaksNumericTiesByText(t *testing.T) {
	if !Less("001", "1") {
		t.Fatal("expected 001 before 1 when values tie")
	}
	if Less("1", "001") {
		t.Fatal("tie break should be asymmetric")
	}
	if !Less("-3", "2") {
		t.Fatal("expected negative ids before positive")
	}
}

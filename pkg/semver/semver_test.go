package semver

import "testing"

func TestParse(t *testing.T) {
	v, err := Parse("1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("unexpected version %+v", v)
	}
	if v.String() != "1.2.3" {
		t.Errorf("unexpected string %q", v.String())
	}

	if _, err := Parse("not-a-version"); err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestCompare(t *testing.T) {
	a, _ := Parse("1.0.0")
	b, _ := Parse("2.0.0")
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("compare ordering is wrong")
	}
}

func TestSameMajor(t *testing.T) {
	a, _ := Parse("1.0.0")
	b, _ := Parse("1.9.4")
	c, _ := Parse("2.0.0")
	if !a.SameMajor(b) {
		t.Error("1.0.0 and 1.9.4 should share a major")
	}
	if a.SameMajor(c) {
		t.Error("1.0.0 and 2.0.0 should not share a major")
	}
}

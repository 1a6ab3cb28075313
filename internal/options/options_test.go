package options

import "testing"

func TestBool(t *testing.T) {
	cases := []struct {
		input  any
		want   bool
		wantOK bool
	}{
		{true, true, true},
		{"true", true, true},
		{"YES", true, true},
		{" on ", true, true},
		{1, true, true},
		{"1", true, true},
		{false, false, true},
		{"False", false, true},
		{"no", false, true},
		{"OFF", false, true},
		{0, false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"t", false, false},
		{2, false, false},
		{float64(1), true, true},
		{float64(0), false, true},
		{float32(1), true, true},
		{0.5, false, false},
		{nil, false, false},
		{[]string{"true"}, false, false},
	}

	for _, tc := range cases {
		got, ok := Bool(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("Bool(%#v) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestBoolPtr(t *testing.T) {
	if BoolPtr("sometimes") != nil {
		t.Fatal("expected nil pointer for unrecognised token")
	}
	ptr := BoolPtr("off")
	if ptr == nil || *ptr {
		t.Fatalf("expected pointer to false, got %v", ptr)
	}
}

func TestIntCoercion(t *testing.T) {
	if got, ok := Int(" 42 "); !ok || got != 42 {
		t.Fatalf("Int(\" 42 \") = (%d, %v)", got, ok)
	}
	if _, ok := Int(3.5); ok {
		t.Fatal("expected fractional float to be rejected")
	}
	if got, ok := Int(float64(7)); !ok || got != 7 {
		t.Fatalf("Int(7.0) = (%d, %v)", got, ok)
	}
	if _, ok := NonNegativeInt("-1"); ok {
		t.Fatal("expected negative value to be rejected")
	}
	if _, ok := IntInRange(25, 1, 20); ok {
		t.Fatal("expected out of range value to be rejected")
	}
	if got, ok := IntInRange("300", 200, 0); !ok || got != 300 {
		t.Fatalf("IntInRange open max = (%d, %v)", got, ok)
	}
}

func TestStringList(t *testing.T) {
	got := StringList(" a, b ,,c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("StringList length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("StringList[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := StringList([]any{"x", 1, ""}); len(got) != 2 || got[1] != "1" {
		t.Fatalf("StringList([]any) = %v", got)
	}
	if StringList("") != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestEnumAndTheme(t *testing.T) {
	if got, ok := Theme("DARK"); !ok || got != "dark" {
		t.Fatalf("Theme(DARK) = (%q, %v)", got, ok)
	}
	if _, ok := Theme("blue"); ok {
		t.Fatal("expected unknown theme to be rejected")
	}
	if got, ok := Enum("Center", "left", "center", "right"); !ok || got != "center" {
		t.Fatalf("Enum = (%q, %v)", got, ok)
	}
}

func TestHexColor(t *testing.T) {
	cases := map[string]string{
		"#ABC":    "aabbcc",
		"1da1f2":  "1da1f2",
		"#1DA1F2": "1da1f2",
		"#12345":  "",
		"red":     "",
	}
	for input, want := range cases {
		got, ok := HexColor(input)
		if want == "" {
			if ok {
				t.Fatalf("HexColor(%q) expected rejection, got %q", input, got)
			}
			continue
		}
		if !ok || got != want {
			t.Fatalf("HexColor(%q) = (%q, %v), want %q", input, got, ok, want)
		}
	}
}

package util

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "a", "b"); got != "a" {
		t.Fatalf("FirstNonEmpty = %q, want a", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("FirstNonEmpty = %q, want empty", got)
	}
}

func TestFirstValue(t *testing.T) {
	values := map[string]any{"q": "go", "query": ""}
	if got := FirstValue(values, "query", "q"); got != "" {
		t.Fatalf("expected present empty value to win, got %v", got)
	}
	if got := FirstValue(values, "missing"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestCloneAnyMap(t *testing.T) {
	source := map[string]any{"a": 1}
	clone := CloneAnyMap(source)
	clone["b"] = 2
	if _, ok := source["b"]; ok {
		t.Fatal("expected clone to be independent")
	}
	if got := CloneAnyMap(map[string]string{"x": "y"}); got["x"] != "y" {
		t.Fatalf("unexpected clone %v", got)
	}
	if got := CloneAnyMap(42); got == nil || len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

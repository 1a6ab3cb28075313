package properties

import "testing"

func TestPropertiesKeepInsertionOrder(t *testing.T) {
	var p Properties
	p.Set("card", "summary")
	p.Set("title", "Hello")
	p.Set("site", "@jack")
	p.Set("title", "Updated")

	keys := p.Keys()
	want := []string{"card", "title", "site"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
	if p.String("title") != "Updated" {
		t.Fatalf("expected overwritten title, got %q", p.String("title"))
	}
}

func TestPropertiesNestedValues(t *testing.T) {
	var p Properties
	p.SetNested("image", Of("src", "https://example.com/a.png", "alt", "A"))
	p.SetNested("empty", Properties{})
	p.SetValue("ignored", 42)

	if p.Len() != 1 {
		t.Fatalf("expected only the non-empty nested value, got %v", p.Keys())
	}
	m := p.Map()
	nested, ok := m["image"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", m["image"])
	}
	if nested["alt"] != "A" {
		t.Fatalf("unexpected nested alt %v", nested["alt"])
	}
}

func TestPropertiesEqual(t *testing.T) {
	a := Of("a", "1", "b", "2")
	b := Of("a", "1", "b", "2")
	c := Of("b", "2", "a", "1")
	if !a.Equal(b) {
		t.Fatal("expected identical sets to be equal")
	}
	if a.Equal(c) {
		t.Fatal("expected different order to compare unequal")
	}
}

func TestPropertiesEachStops(t *testing.T) {
	p := Of("a", "1", "b", "2", "c", "3")
	visited := 0
	p.Each(func(string, any) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("expected Each to stop after 2 entries, visited %d", visited)
	}
}

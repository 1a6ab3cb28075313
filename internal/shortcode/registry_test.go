package shortcode

import (
	"errors"
	"slices"
	"testing"

	"github.com/goliatone/go-cms-social/internal/features"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

type rejectingValidator struct{ err error }

func (v rejectingValidator) ValidateDefinition(interfaces.ShortcodeDefinition) error { return v.err }

func followStub() interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:    "twitter_follow",
		Feature: features.FollowButton,
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{
				{Name: "screen_name", Type: interfaces.ShortcodeParamString},
			},
		},
		Template: `<a class="twitter-follow-button">Follow</a>`,
	}
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	registry := NewRegistry(nil)
	if err := registry.Register(followStub()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	for _, name := range []string{"twitter_follow", "Twitter_Follow", "  TWITTER_FOLLOW "} {
		got, ok := registry.Get(name)
		if !ok {
			t.Fatalf("Get(%q) expected definition", name)
		}
		if got.Feature != features.FollowButton {
			t.Fatalf("Get(%q) feature = %q", name, got.Feature)
		}
	}
	if registry.Has("twitter_share") {
		t.Fatal("Has() reported an unregistered shortcode")
	}
}

func TestRegistryRejects(t *testing.T) {
	registry := NewRegistry(nil)
	if err := registry.Register(followStub()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	dup := followStub()
	dup.Name = "TWITTER_FOLLOW"
	if err := registry.Register(dup); !errors.Is(err, ErrDuplicateDefinition) {
		t.Fatalf("expected ErrDuplicateDefinition, got %v", err)
	}
	if err := registry.Register(interfaces.ShortcodeDefinition{Name: "  "}); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("expected ErrInvalidDefinition for a blank name, got %v", err)
	}

	sentinel := errors.New("rejected")
	strict := NewRegistry(rejectingValidator{err: sentinel})
	if err := strict.Register(followStub()); !errors.Is(err, sentinel) {
		t.Fatalf("expected validator error, got %v", err)
	}
	if strict.Has("twitter_follow") {
		t.Fatal("rejected definition was stored")
	}
}

func TestRegistryListAndRemove(t *testing.T) {
	registry := NewRegistry(NewValidator())
	if err := RegisterBuiltIns(registry, []string{"twitter_share", "tweet", "twitter_follow"}); err != nil {
		t.Fatalf("RegisterBuiltIns() error: %v", err)
	}

	names := func() []string {
		var out []string
		for _, def := range registry.List() {
			out = append(out, def.Name)
		}
		return out
	}
	if got := names(); !slices.Equal(got, []string{"tweet", "twitter_follow", "twitter_share"}) {
		t.Fatalf("List() = %v", got)
	}

	registry.Remove("Tweet")
	if got := names(); !slices.Equal(got, []string{"twitter_follow", "twitter_share"}) {
		t.Fatalf("List() after Remove = %v", got)
	}
}

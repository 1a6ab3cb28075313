package shortcode

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/features"
)

func TestBuiltInDefinitions(t *testing.T) {
	defs := BuiltInDefinitions()
	if len(defs) == 0 {
		t.Fatal("expected built-in definitions")
	}

	reg := NewRegistry(NewValidator())
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			t.Fatalf("register built-in %s: %v", def.Name, err)
		}
		if def.Feature == "" {
			t.Fatalf("built-in %s has no feature", def.Name)
		}
	}

	for _, name := range []string{"tweet", "twitter_follow", "twitter_share", "twitter_hashtag", "twitter_profile", "twitter_list", "twitter_search", "twitter_collection", "twitter_tracking"} {
		if _, ok := reg.Get(name); !ok {
			t.Fatalf("%s definition not registered", name)
		}
	}
}

func TestBuiltInEmbedsAreCached(t *testing.T) {
	for _, def := range BuiltInDefinitions() {
		switch def.Feature {
		case features.EmbeddedTweet, features.EmbeddedTimeline:
			if def.CacheTTL != time.Hour {
				t.Fatalf("%s CacheTTL = %v", def.Name, def.CacheTTL)
			}
		default:
			if def.CacheTTL != 0 {
				t.Fatalf("%s should not be cached", def.Name)
			}
		}
	}
}

func TestBuiltInDefaultsFromOptions(t *testing.T) {
	defs := BuiltInDefinitions(BuiltInOptions{
		Site:      accounts.FromScreenName("site"),
		Theme:     "dark",
		LinkColor: "ff0000",
		Lang:      " ",
	})
	for _, def := range defs {
		if def.Name != "twitter_profile" {
			continue
		}
		if def.Schema.Defaults["theme"] != "dark" || def.Schema.Defaults["link_color"] != "ff0000" {
			t.Fatalf("unexpected defaults %#v", def.Schema.Defaults)
		}
		if _, ok := def.Schema.Defaults["lang"]; ok {
			t.Fatal("expected blank lang to be skipped")
		}
		return
	}
	t.Fatal("twitter_profile not found")
}

func TestRegisterBuiltIns(t *testing.T) {
	reg := NewRegistry(NewValidator())
	if err := RegisterBuiltIns(reg, []string{" Tweet ", "", "twitter_follow"}); err != nil {
		t.Fatalf("RegisterBuiltIns() error: %v", err)
	}
	if got := len(reg.List()); got != 2 {
		t.Fatalf("expected 2 definitions, got %d", got)
	}

	if err := RegisterBuiltIns(reg, []string{"youtube"}); !errors.Is(err, ErrBuiltInNotFound) {
		t.Fatalf("expected ErrBuiltInNotFound, got %v", err)
	}
	if err := RegisterBuiltIns(reg, []string{"tweet"}); !errors.Is(err, ErrDuplicateDefinition) {
		t.Fatalf("expected ErrDuplicateDefinition, got %v", err)
	}
	if err := RegisterBuiltIns(nil, nil); !errors.Is(err, ErrRegistryRequired) {
		t.Fatalf("expected ErrRegistryRequired, got %v", err)
	}
}

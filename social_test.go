package social_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	goerrors "github.com/goliatone/go-errors"

	social "github.com/goliatone/go-cms-social"
)

func newModule(t *testing.T, mutate func(*social.Config)) *social.Module {
	t.Helper()
	cfg := social.DefaultConfig()
	cfg.Site.ScreenName = "gopher"
	if mutate != nil {
		mutate(&cfg)
	}
	module, err := social.New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return module
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := social.DefaultConfig()
	cfg.Widgets.Theme = "blue"

	_, err := social.New(cfg)
	if !errors.Is(err, social.ErrWidgetThemeInvalid) {
		t.Fatalf("expected ErrWidgetThemeInvalid, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	var richErr *goerrors.Error
	if !errors.As(err, &richErr) || richErr.TextCode != "SOCIAL_CONFIG_INVALID" {
		t.Fatalf("expected SOCIAL_CONFIG_INVALID text code, got %v", err)
	}
}

func TestModuleProcess(t *testing.T) {
	module := newModule(t, nil)

	content := `<p>Intro</p>
{{< tweet 1234567890 >}}
{{< twitter_share text="Hello world" url="https://example.com/post" >}}`

	out, err := module.Process(context.Background(), content)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if id, _ := doc.Find("blockquote.twitter-tweet").Attr("data-id"); id != "1234567890" {
		t.Fatalf("expected embedded tweet 1234567890, got %q in %s", id, out)
	}
	href, _ := doc.Find("a.twitter-share-button").Attr("href")
	if !strings.Contains(href, "via=gopher") || !strings.Contains(href, "text=Hello%20world") {
		t.Fatalf("unexpected share href %q", href)
	}
}

func TestModuleStats(t *testing.T) {
	module := newModule(t, nil)

	for i := 0; i < 2; i++ {
		if _, err := module.Process(context.Background(), "{{< tweet 20 >}}"); err != nil {
			t.Fatalf("Process returned error: %v", err)
		}
	}
	stats := module.Stats()["tweet"]
	if stats.Renders != 2 || stats.CacheHits != 1 || stats.Errors != 0 {
		t.Fatalf("unexpected tweet stats %+v", stats)
	}
}

func TestModuleProcessParseError(t *testing.T) {
	module := newModule(t, nil)

	_, err := module.Process(context.Background(), "text {{< /tweet >}}")
	if err == nil {
		t.Fatal("expected malformed shortcodes to fail")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestModuleRender(t *testing.T) {
	module := newModule(t, nil)

	html, err := module.Render(context.Background(), "twitter_follow", map[string]any{"screen_name": "@golang"}, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(string(html), "screen_name=golang") {
		t.Fatalf("unexpected follow markup %s", html)
	}

	_, err = module.Render(context.Background(), "twitter_search", map[string]any{"query": "go"}, "")
	if err == nil {
		t.Fatal("expected missing widget_id to fail")
	}
	var richErr *goerrors.Error
	if !errors.As(err, &richErr) || richErr.TextCode != "SOCIAL_SHORTCODE_RENDER_FAILED" {
		t.Fatalf("expected SOCIAL_SHORTCODE_RENDER_FAILED, got %v", err)
	}
}

func TestModuleCardMeta(t *testing.T) {
	module := newModule(t, nil)

	html := module.CardMetaFromValues(map[string]any{
		"card":        "summary",
		"title":       "Launch",
		"description": "Ship it",
	})
	want := strings.Join([]string{
		`<meta name="twitter:card" content="summary"/>`,
		`<meta name="twitter:title" content="Launch"/>`,
		`<meta name="twitter:site" content="@gopher"/>`,
		`<meta name="twitter:description" content="Ship it"/>`,
	}, "\n")
	if string(html) != want {
		t.Fatalf("CardMetaFromValues =\n%s\nwant\n%s", html, want)
	}

	if got := module.CardMetaFromValues(map[string]any{"card": "player"}); got != "" {
		t.Fatalf("expected unknown card type to render nothing, got %s", got)
	}
}

func TestModuleCardMetaDisabledFeature(t *testing.T) {
	module := newModule(t, func(cfg *social.Config) {
		cfg.Features.Disabled = []string{"cards"}
	})
	if got := module.CardMetaFromValues(map[string]any{"title": "Launch"}); got != "" {
		t.Fatalf("expected nothing while cards are disabled, got %s", got)
	}
	if slices.Contains(module.Features(), "cards") {
		t.Fatalf("expected cards missing from %v", module.Features())
	}
}

func TestModuleWidgetsMeta(t *testing.T) {
	module := newModule(t, func(cfg *social.Config) {
		cfg.Widgets.Theme = "dark"
		cfg.Widgets.LinkColor = "#ABC"
		cfg.Widgets.DoNotTrack = true
	})

	want := strings.Join([]string{
		`<meta name="twitter:widgets:theme" content="dark"/>`,
		`<meta name="twitter:widgets:link-color" content="#aabbcc"/>`,
		`<meta name="twitter:dnt" content="on"/>`,
	}, "\n")
	if got := string(module.WidgetsMeta()); got != want {
		t.Fatalf("WidgetsMeta =\n%s\nwant\n%s", got, want)
	}
}

func TestModuleAccessors(t *testing.T) {
	module := newModule(t, nil)

	if site := module.Site(); site == nil || site.ScreenName() != "gopher" {
		t.Fatalf("unexpected site %v", site)
	}
	if !slices.Contains(module.Shortcodes(), "twitter_hashtag") {
		t.Fatalf("expected twitter_hashtag in %v", module.Shortcodes())
	}
	if len(module.Features()) != 6 {
		t.Fatalf("expected every feature enabled, got %v", module.Features())
	}
}

func TestNilModule(t *testing.T) {
	var module *social.Module
	if _, err := module.Process(context.Background(), "text"); err == nil {
		t.Fatal("expected nil module to fail")
	}
	if module.Shortcodes() != nil || module.WidgetsMeta() != "" {
		t.Fatal("expected nil module accessors to be empty")
	}
}

package meta

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/cards"
)

func tagNames(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func assertTags(t *testing.T, got []Tag, want []Tag) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag %d = %+v, want %+v (all: %v)", i, got[i], want[i], tagNames(got))
		}
	}
}

func TestCardTagsFlatAndNested(t *testing.T) {
	card := cards.NewSummaryLargeImage().
		SetTitle("Launch").
		SetSite(accounts.FromScreenName("shop")).
		SetImage(cards.NewImage("https://example.com/a.png").SetAlt("Rocket")).
		SetCreator(accounts.FromID("42"))

	assertTags(t, NewBuilder().CardTags(card), []Tag{
		{Name: "twitter:card", Content: "summary_large_image"},
		{Name: "twitter:title", Content: "Launch"},
		{Name: "twitter:site", Content: "@shop"},
		{Name: "twitter:image", Content: "https://example.com/a.png"},
		{Name: "twitter:image:alt", Content: "Rocket"},
		{Name: "twitter:creator:id", Content: "42"},
	})
}

func TestCardTagsDefaultSite(t *testing.T) {
	builder := NewBuilder(WithSite(accounts.FromScreenName("@site")))

	titled := cards.NewSummary().SetTitle("Hello").SetDescription("World")
	assertTags(t, builder.CardTags(titled), []Tag{
		{Name: "twitter:card", Content: "summary"},
		{Name: "twitter:title", Content: "Hello"},
		{Name: "twitter:site", Content: "@site"},
		{Name: "twitter:description", Content: "World"},
	})

	untitled := cards.NewSummary().SetDescription("World")
	assertTags(t, builder.CardTags(untitled), []Tag{
		{Name: "twitter:card", Content: "summary"},
		{Name: "twitter:site", Content: "@site"},
		{Name: "twitter:description", Content: "World"},
	})

	own := cards.NewSummary().SetSite(accounts.FromScreenName("mine"))
	if tags := builder.CardTags(own); tags[1].Content != "@mine" || len(tags) != 2 {
		t.Fatalf("expected card site to win, got %v", tags)
	}
}

func TestCardTagsInvalidSiteIgnored(t *testing.T) {
	builder := NewBuilder(WithSite(accounts.FromScreenName("not valid!")))
	if builder.Site() != nil {
		t.Fatal("expected invalid site to be ignored")
	}
	if tags := builder.CardTags(cards.NewSummary()); len(tags) != 1 {
		t.Fatalf("expected only the card type, got %v", tags)
	}
	if builder.CardTags(nil) != nil {
		t.Fatal("expected nil card to produce no tags")
	}
}

func TestRenderEscapes(t *testing.T) {
	html := Render([]Tag{
		{Name: "twitter:card", Content: "summary"},
		{Name: "twitter:title", Content: `Tom & "Jerry" <3`},
	})

	lines := strings.Split(string(html), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per tag, got %q", html)
	}
	if lines[1] != `<meta name="twitter:title" content="Tom &amp; &#34;Jerry&#34; &lt;3"/>` {
		t.Fatalf("unexpected meta element %s", lines[1])
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	content, _ := doc.Find(`meta[name="twitter:title"]`).Attr("content")
	if content != `Tom & "Jerry" <3` {
		t.Fatalf("round trip content = %q", content)
	}
}

func TestWidgetTags(t *testing.T) {
	tags := WidgetTags(WidgetsFromValues(map[string]any{
		"theme":        "DARK",
		"link_color":   "#ABC",
		"border_color": "not-a-color",
		"csp":          "on",
		"dnt":          "yes",
	}))
	assertTags(t, tags, []Tag{
		{Name: "twitter:widgets:theme", Content: "dark"},
		{Name: "twitter:widgets:link-color", Content: "#aabbcc"},
		{Name: "twitter:widgets:csp", Content: "on"},
		{Name: "twitter:dnt", Content: "on"},
	})

	if len(WidgetTags(Widgets{Theme: "blue"})) != 0 {
		t.Fatal("expected invalid theme to be dropped")
	}
}

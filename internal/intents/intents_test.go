package intents

import (
	"testing"

	"github.com/goliatone/go-cms-social/internal/accounts"
)

func TestEscapeUsesRFC3986(t *testing.T) {
	if got := Escape("a+b c~*"); got != "a%2Bb%20c~%2A" {
		t.Fatalf("Escape() = %q", got)
	}
	if got := Unescape("a%2Bb%20c"); got != "a+b c" {
		t.Fatalf("Unescape() = %q", got)
	}
	if got := Unescape("100%"); got != "100%" {
		t.Fatalf("Unescape() should return malformed input unchanged, got %q", got)
	}
}

func TestAddHashtagDeduplicatesCaseInsensitively(t *testing.T) {
	tweet := NewTweet().AddHashtag("Foo").AddHashtag("#foo").AddHashtag(" ＃FOO ").AddHashtag("Bar")
	got := tweet.Hashtags()
	if len(got) != 2 || got[0] != "Foo" || got[1] != "Bar" {
		t.Fatalf("Hashtags() = %v", got)
	}
}

func TestAddRelatedDeduplicatesByUsername(t *testing.T) {
	tweet := NewTweet().
		AddRelated("@Jack", "Founder").
		AddRelated("jack", "Other").
		AddRelated("not a handle", "x")
	related := tweet.Related()
	if len(related) != 1 {
		t.Fatalf("expected 1 related account, got %v", related)
	}
	if related[0].Username != "Jack" || related[0].Label != "Founder" {
		t.Fatalf("unexpected related account %+v", related[0])
	}
}

func TestSetURLRequiresWebScheme(t *testing.T) {
	tweet := NewTweet().SetURL("javascript:alert(1)")
	if tweet.Link() != "" {
		t.Fatalf("expected url to be rejected, got %q", tweet.Link())
	}
	tweet.SetURL("https://example.com/post")
	if tweet.Link() != "https://example.com/post" {
		t.Fatalf("Link() = %q", tweet.Link())
	}

	trusted := NewTweet(WithoutValidation()).SetURL("app://share/1")
	if trusted.Link() != "app://share/1" {
		t.Fatalf("expected trusted url to be kept, got %q", trusted.Link())
	}
}

func TestQueryParametersOrder(t *testing.T) {
	tweet := NewTweet().
		AddRelated("ev", "").
		SetVia("gopher").
		AddHashtag("golang").
		SetURL("https://example.com").
		SetText("Hello").
		SetInReplyTo("12345")

	keys := tweet.QueryParameters().Keys()
	want := []string{"in_reply_to", "text", "url", "hashtags", "via", "related"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestTweetURL(t *testing.T) {
	if got := NewTweet().URL(); got != BaseURL+"tweet" {
		t.Fatalf("empty URL() = %q", got)
	}

	tweet := NewTweet().
		SetText("Read this & share").
		SetURL("https://example.com/a?b=c").
		AddHashtag("go").
		AddHashtag("news").
		AddRelated("jack", "Co-founder, Twitter")

	want := "https://twitter.com/intent/tweet?" +
		"text=Read%20this%20%26%20share" +
		"&url=https%3A%2F%2Fexample.com%2Fa%3Fb%3Dc" +
		"&hashtags=go%2Cnews" +
		"&related=jack%3ACo-founder%252C%2520Twitter"
	if got := tweet.URL(); got != want {
		t.Fatalf("URL() = %q\nwant    %q", got, want)
	}
}

func TestTweetFromValuesRoundTrip(t *testing.T) {
	original := NewTweet().
		SetInReplyTo("20").
		SetText("Hello world").
		SetURL("https://example.com/post").
		AddHashtag("GoLang").
		AddHashtag("news").
		SetVia("@gopher").
		AddRelated("jack", "Co-founder: Twitter, Square").
		AddRelated("ev", "")

	params := original.QueryParameters()
	rebuilt := TweetFromValues(params.Map())
	if !rebuilt.QueryParameters().Equal(params) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", rebuilt.QueryParameters().Map(), params.Map())
	}
	if rebuilt.Related()[0].Label != "Co-founder: Twitter, Square" {
		t.Fatalf("expected decoded label, got %q", rebuilt.Related()[0].Label)
	}
}

func TestTweetFromValuesAcceptsListsAndMaps(t *testing.T) {
	tweet := TweetFromValues(map[string]any{
		"text":     "Hi",
		"hashtags": []any{"#one", "two", "ONE"},
		"related":  map[string]any{"zed": "Z", "amy": "A"},
	})
	if got := tweet.Hashtags(); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("Hashtags() = %v", got)
	}
	related := tweet.Related()
	if len(related) != 2 || related[0].Username != "amy" || related[1].Username != "zed" {
		t.Fatalf("Related() = %v", related)
	}
}

func TestFollowURL(t *testing.T) {
	tests := []struct {
		name    string
		account *accounts.Account
		want    string
	}{
		{name: "screen name", account: accounts.FromScreenName("@jack"), want: "https://twitter.com/intent/follow?screen_name=jack"},
		{name: "user id", account: accounts.FromID("783214"), want: "https://twitter.com/intent/follow?user_id=783214"},
		{name: "missing account", account: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFollow(tt.account).URL(); got != tt.want {
				t.Fatalf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

package buttons

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-cms-social/internal/accounts"
)

func find(t *testing.T, fragment, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc.Find(selector)
}

func TestFollowButtonMarkup(t *testing.T) {
	button := NewFollowButton(accounts.FromScreenName("@jack")).
		SetShowCount(false).
		SetShowScreenName(true).
		SetSize("LARGE").
		SetLang("EN")

	anchor := find(t, string(button.Markup()), "a.twitter-follow-button")
	if anchor.Length() != 1 {
		t.Fatalf("expected follow anchor in %s", button.Markup())
	}
	if href, _ := anchor.Attr("href"); href != "https://twitter.com/intent/follow?screen_name=jack" {
		t.Fatalf("href = %q", href)
	}
	if anchor.Text() != "Follow @jack" {
		t.Fatalf("text = %q", anchor.Text())
	}
	checks := map[string]string{"data-show-count": "false", "data-size": "large", "data-lang": "en"}
	for attr, want := range checks {
		if got, _ := anchor.Attr(attr); got != want {
			t.Fatalf("%s = %q, want %q", attr, got, want)
		}
	}
	if _, ok := anchor.Attr("data-show-screen-name"); ok {
		t.Fatal("expected default show-screen-name to be omitted")
	}
}

func TestFollowButtonWithoutAccount(t *testing.T) {
	button := FollowButtonFromValues(map[string]any{"screen_name": "not valid!"})
	if button.Markup() != "" {
		t.Fatalf("expected no markup, got %s", button.Markup())
	}
	if len(button.DataAttributes()) != 0 {
		t.Fatal("expected no data attributes")
	}
}

func TestFollowButtonFromValues(t *testing.T) {
	button := FollowButtonFromValues(map[string]any{
		"user_id":    "12",
		"show_count": "no",
		"size":       "huge",
	})
	anchor := find(t, string(button.Markup()), "a")
	if href, _ := anchor.Attr("href"); href != "https://twitter.com/intent/follow?user_id=12" {
		t.Fatalf("href = %q", href)
	}
	if anchor.Text() != "Follow" {
		t.Fatalf("text = %q", anchor.Text())
	}
	if _, ok := anchor.Attr("data-size"); ok {
		t.Fatal("expected unknown size to be ignored")
	}
}

func TestTweetButtonFromValues(t *testing.T) {
	button := TweetButtonFromValues(map[string]any{
		"text":     "Hello world",
		"url":      "https://example.com",
		"hashtags": "go,news",
		"size":     "large",
	})
	anchor := find(t, string(button.Markup()), "a.twitter-share-button")
	href, _ := anchor.Attr("href")
	want := "https://twitter.com/intent/tweet?text=Hello%20world&url=https%3A%2F%2Fexample.com&hashtags=go%2Cnews"
	if href != want {
		t.Fatalf("href = %q, want %q", href, want)
	}
	if anchor.Text() != "Tweet" {
		t.Fatalf("text = %q", anchor.Text())
	}
	if size, _ := anchor.Attr("data-size"); size != "large" {
		t.Fatalf("data-size = %q", size)
	}
}

package tracking

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestPixelDeduplicatesIDs(t *testing.T) {
	pixel := NewPixel("l4ab", "L4AB", "bad id", "toolong", "k1x")
	ids := pixel.IDs()
	if len(ids) != 2 || ids[0] != "l4ab" || ids[1] != "k1x" {
		t.Fatalf("IDs() = %v", ids)
	}
}

func TestPixelURLs(t *testing.T) {
	urls := NewPixel("l4ab").URLs()
	want := []string{
		"https://analytics.twitter.com/i/adsct?txn_id=l4ab&p_id=Twitter",
		"https://t.co/i/adsct?txn_id=l4ab&p_id=Twitter",
	}
	if len(urls) != len(want) {
		t.Fatalf("URLs() = %v", urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("URLs()[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestPixelMarkup(t *testing.T) {
	if NewPixel().Markup() != "" {
		t.Fatal("expected no markup without ids")
	}
	out := string(NewPixel("l4ab", "k1x").Markup())
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	images := doc.Find("img")
	if images.Length() != 4 {
		t.Fatalf("expected 4 images, got %d in %s", images.Length(), out)
	}
	if width, _ := images.First().Attr("width"); width != "1" {
		t.Fatalf("width = %q", width)
	}
}

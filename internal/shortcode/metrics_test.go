package shortcode

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryMetrics(t *testing.T) {
	m := NewMemoryMetrics()
	m.ObserveRenderDuration("tweet", 10*time.Millisecond)
	m.ObserveRenderDuration("Tweet", 30*time.Millisecond)
	m.IncrementRenderError("tweet")
	m.IncrementCacheHit("twitter_follow")

	snap := m.Snapshot()
	tweet := snap["tweet"]
	if tweet.Renders != 2 || tweet.Errors != 1 || tweet.Average() != 20*time.Millisecond {
		t.Fatalf("unexpected tweet stats %+v", tweet)
	}
	if snap["twitter_follow"].CacheHits != 1 || snap["twitter_follow"].Average() != 0 {
		t.Fatalf("unexpected follow stats %+v", snap["twitter_follow"])
	}

	snap["tweet"] = RenderStats{}
	if m.Snapshot()["tweet"].Renders != 2 {
		t.Fatal("expected Snapshot to return a copy")
	}
}

func TestMemoryMetricsConcurrent(t *testing.T) {
	m := NewMemoryMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.ObserveRenderDuration("tweet", time.Millisecond)
		}()
	}
	wg.Wait()
	if got := m.Snapshot()["tweet"].Renders; got != 50 {
		t.Fatalf("Renders = %d, want 50", got)
	}
}

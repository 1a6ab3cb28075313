package shortcode

import (
	"maps"
	"sync"
	"time"

	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// NoOpMetrics drops every observation.
func NoOpMetrics() interfaces.ShortcodeMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveRenderDuration(string, time.Duration) {}
func (noopMetrics) IncrementRenderError(string)                 {}
func (noopMetrics) IncrementCacheHit(string)                    {}

// RenderStats aggregates the observations for one shortcode.
type RenderStats struct {
	Renders   int
	Errors    int
	CacheHits int
	Total     time.Duration
}

// Average is the mean render duration, zero before the first render.
func (s RenderStats) Average() time.Duration {
	if s.Renders == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Renders)
}

// MemoryMetrics keeps per-shortcode counters in memory. It is safe for
// concurrent use.
type MemoryMetrics struct {
	mu    sync.Mutex
	stats map[string]RenderStats
}

func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{stats: make(map[string]RenderStats)}
}

func (m *MemoryMetrics) update(shortcode string, fn func(*RenderStats)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats[normalizeName(shortcode)]
	fn(&s)
	m.stats[normalizeName(shortcode)] = s
}

func (m *MemoryMetrics) ObserveRenderDuration(shortcode string, d time.Duration) {
	m.update(shortcode, func(s *RenderStats) {
		s.Renders++
		s.Total += d
	})
}

func (m *MemoryMetrics) IncrementRenderError(shortcode string) {
	m.update(shortcode, func(s *RenderStats) { s.Errors++ })
}

func (m *MemoryMetrics) IncrementCacheHit(shortcode string) {
	m.update(shortcode, func(s *RenderStats) { s.CacheHits++ })
}

// Snapshot returns a copy of the counters keyed by shortcode name.
func (m *MemoryMetrics) Snapshot() map[string]RenderStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.stats)
}

var _ interfaces.ShortcodeMetrics = (*MemoryMetrics)(nil)

package service

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/matchcast/internal/metrics"
)

// ForecastCache keeps the latest forecast of each fixture for a fixed TTL
type ForecastCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	hitCount  atomic.Uint64
	missCount atomic.Uint64
}

// NewForecastCache creates a forecast cache. Expired entries are swept
// every cleanup interval.
func NewForecastCache(ttl, cleanup time.Duration) *ForecastCache {
	return &ForecastCache{
		cache: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// Get retrieves the cached forecast of a fixture
func (fc *ForecastCache) Get(matchID uuid.UUID) (*MatchForecast, bool) {
	if v, found := fc.cache.Get(matchID.String()); found {
		if f, ok := v.(*MatchForecast); ok {
			fc.hitCount.Add(1)
			fc.updateMetrics()
			return f, true
		}
	}
	fc.missCount.Add(1)
	fc.updateMetrics()
	return nil, false
}

// Set stores a forecast, replacing any earlier one for the same fixture
func (fc *ForecastCache) Set(f *MatchForecast) {
	fc.cache.Set(f.Match.ID.String(), f, fc.ttl)
}

// Items returns every unexpired forecast in no particular order
func (fc *ForecastCache) Items() []*MatchForecast {
	items := fc.cache.Items()
	out := make([]*MatchForecast, 0, len(items))
	for _, item := range items {
		if f, ok := item.Object.(*MatchForecast); ok {
			out = append(out, f)
		}
	}
	return out
}

// Invalidate removes the forecast of a fixture
func (fc *ForecastCache) Invalidate(matchID uuid.UUID) {
	fc.cache.Delete(matchID.String())
}

// Clear removes every forecast and resets the counters
func (fc *ForecastCache) Clear() {
	fc.cache.Flush()
	fc.hitCount.Store(0)
	fc.missCount.Store(0)
}

// Stats returns cache statistics
func (fc *ForecastCache) Stats() CacheStats {
	hits := fc.hitCount.Load()
	misses := fc.missCount.Load()
	return CacheStats{
		Size:      fc.cache.ItemCount(),
		HitCount:  hits,
		MissCount: misses,
		HitRatio:  hitRatio(hits, misses),
	}
}

func (fc *ForecastCache) updateMetrics() {
	metrics.UpdateCacheHitRatio(hitRatio(fc.hitCount.Load(), fc.missCount.Load()))
}

func hitRatio(hits, misses uint64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// CacheStats represents cache statistics
type CacheStats struct {
	Size      int     `json:"size"`
	HitCount  uint64  `json:"hit_count"`
	MissCount uint64  `json:"miss_count"`
	HitRatio  float64 `json:"hit_ratio"`
}

package analytics

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/stretchr/testify/assert"
)

type staticLister struct {
	responses []*models.WaitlistResponse
	calls     int
}

func (l *staticLister) GetAllResponses(ctx context.Context) ([]*models.WaitlistResponse, error) {
	l.calls++
	return l.responses, nil
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *mapCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func day(offset int) time.Time {
	return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func fixtureResponses() []*models.WaitlistResponse {
	return []*models.WaitlistResponse{
		{
			Age:                 "26-35",
			PrayerFrequency:     "5_times_daily",
			ArabicUnderstanding: "basic",
			ARInterest:          "very_meaningful",
			Features:            models.FeatureList{"live_translation", "prayer_times", "qibla_indicator"},
			CreatedAt:           day(0),
		},
		{
			Age:                 "26-35",
			PrayerFrequency:     "weekly",
			ArabicUnderstanding: "none",
			ARInterest:          "life_changing",
			Features:            models.FeatureList{"live_translation"},
			CreatedAt:           day(0),
		},
		{
			Age:                 "18-25",
			PrayerFrequency:     "5_times_daily",
			ArabicUnderstanding: "basic",
			ARInterest:          "very_meaningful",
			Features:            models.FeatureList{"prayer_times"},
			CreatedAt:           day(2),
		},
	}
}

func TestAnalyticsService_ComputeAnalytics(t *testing.T) {
	t.Run("aggregates every distribution in one pass", func(t *testing.T) {
		lister := &staticLister{responses: fixtureResponses()}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, nil)

		summary, err := service.ComputeAnalytics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, summary.TotalResponses)
		assert.Equal(t, map[string]int{"26-35": 2, "18-25": 1}, summary.AgeDistribution)
		assert.Equal(t, map[string]int{"5_times_daily": 2, "weekly": 1}, summary.PrayerFrequencyDistribution)
		assert.Equal(t, map[string]int{"basic": 2, "none": 1}, summary.ArabicUnderstandingDistribution)
		assert.Equal(t, map[string]int{"very_meaningful": 2, "life_changing": 1}, summary.ARInterestDistribution)
	})

	t.Run("feature selections are flattened", func(t *testing.T) {
		lister := &staticLister{responses: fixtureResponses()}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, nil)

		summary, err := service.ComputeAnalytics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, map[string]int{
			"live_translation": 2,
			"prayer_times":     2,
			"qibla_indicator":  1,
		}, summary.FeaturesDistribution)
	})

	t.Run("daily submissions are bucketed and chronological", func(t *testing.T) {
		lister := &staticLister{responses: fixtureResponses()}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, nil)

		summary, err := service.ComputeAnalytics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []DailyCount{
			{Date: "2026-05-01", Count: 2},
			{Date: "2026-05-03", Count: 1},
		}, summary.DailySubmissions)
	})

	t.Run("day buckets use UTC regardless of the stored zone", func(t *testing.T) {
		// 03:00 on May 2nd at UTC+5 is still May 1st in UTC.
		eastOfGreenwich := time.FixedZone("UTC+5", 5*60*60)
		lister := &staticLister{responses: []*models.WaitlistResponse{
			{
				Age:       "26-35",
				Features:  models.FeatureList{"live_translation"},
				CreatedAt: time.Date(2026, 5, 2, 3, 0, 0, 0, eastOfGreenwich),
			},
		}}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, nil)

		summary, err := service.ComputeAnalytics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []DailyCount{{Date: "2026-05-01", Count: 1}}, summary.DailySubmissions)
	})

	t.Run("summary marshals with the documented field names", func(t *testing.T) {
		lister := &staticLister{responses: fixtureResponses()}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, nil)

		summary, err := service.ComputeAnalytics(context.Background())
		assert.NoError(t, err)

		payload, err := json.Marshal(summary)
		assert.NoError(t, err)

		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal(payload, &decoded))
		for _, key := range []string{
			"totalResponses",
			"ageDistribution",
			"prayerFrequencyDistribution",
			"arabicUnderstandingDistribution",
			"arInterestDistribution",
			"featuresDistribution",
			"dailySubmissions",
		} {
			assert.Contains(t, decoded, key)
		}
	})

	t.Run("empty store yields zeroed summary", func(t *testing.T) {
		lister := &staticLister{}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, nil)

		summary, err := service.ComputeAnalytics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, summary.TotalResponses)
		assert.Empty(t, summary.AgeDistribution)
		assert.Empty(t, summary.DailySubmissions)
	})

	t.Run("second call within the TTL is served from the cache", func(t *testing.T) {
		lister := &staticLister{responses: fixtureResponses()}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, newMapCache())

		first, err := service.ComputeAnalytics(context.Background())
		assert.NoError(t, err)

		second, err := service.ComputeAnalytics(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, 1, lister.calls)
		assert.Equal(t, first, second)
	})

	t.Run("invalidate forces a recompute", func(t *testing.T) {
		lister := &staticLister{responses: fixtureResponses()}
		service := NewAnalyticsService(log.NewLoggerWithJSONOutput(), lister, newMapCache())

		_, err := service.ComputeAnalytics(context.Background())
		assert.NoError(t, err)

		service.Invalidate(context.Background())

		_, err = service.ComputeAnalytics(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, 2, lister.calls)
	})
}

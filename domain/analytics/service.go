package analytics

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/arrahmanlabs/waitlist-api/pkg/constants"
)

const (
	snapshotCacheKey = "analytics:snapshot"
	snapshotCacheTTL = 60 * time.Second
)

// ResponseLister is the slice of the waitlist repository the aggregator
// reads from.
type ResponseLister interface {
	GetAllResponses(ctx context.Context) ([]*models.WaitlistResponse, error)
}

// Cache is the subset of the application cache the aggregator needs. A nil
// Cache disables caching and every call recomputes.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DailyCount is one day's submission tally, keyed by calendar date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary carries raw counts only. Percentages are a presentation concern
// and are left to whoever renders the numbers.
type Summary struct {
	TotalResponses                  int            `json:"totalResponses"`
	AgeDistribution                 map[string]int `json:"ageDistribution"`
	PrayerFrequencyDistribution     map[string]int `json:"prayerFrequencyDistribution"`
	ArabicUnderstandingDistribution map[string]int `json:"arabicUnderstandingDistribution"`
	ARInterestDistribution          map[string]int `json:"arInterestDistribution"`
	FeaturesDistribution            map[string]int `json:"featuresDistribution"`
	DailySubmissions                []DailyCount   `json:"dailySubmissions"`
}

type AnalyticsService interface {
	// ComputeAnalytics returns the current summary, served from the cache
	// when a fresh snapshot exists.
	ComputeAnalytics(ctx context.Context) (*Summary, error)

	// Invalidate drops the cached snapshot after the data changed.
	Invalidate(ctx context.Context)
}

type analyticsService struct {
	logger    *log.Logger
	responses ResponseLister
	cache     Cache
}

func NewAnalyticsService(logger *log.Logger, responses ResponseLister, cache Cache) AnalyticsService {
	return &analyticsService{
		logger:    logger,
		responses: responses,
		cache:     cache,
	}
}

func (s *analyticsService) ComputeAnalytics(ctx context.Context) (*Summary, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if cached := s.readSnapshot(ctx, logger); cached != nil {
		return cached, nil
	}

	responses, err := s.responses.GetAllResponses(ctx)
	if err != nil {
		logger.Error("Failed to load responses for analytics", "error", err)
		return nil, err
	}

	summary := aggregate(responses)
	s.writeSnapshot(ctx, logger, summary)

	return summary, nil
}

func (s *analyticsService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, snapshotCacheKey); err != nil {
		logger := log.GetLoggerInstanceFromContext(ctx, s.logger)
		logger.Error("Failed to invalidate analytics snapshot", "error", err)
	}
}

func (s *analyticsService) readSnapshot(ctx context.Context, logger *log.Logger) *Summary {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, snapshotCacheKey)
	if err != nil {
		logger.Error("Failed to read analytics snapshot", "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		logger.Error("Discarding undecodable analytics snapshot", "error", err)
		return nil
	}

	return &summary
}

func (s *analyticsService) writeSnapshot(ctx context.Context, logger *log.Logger, summary *Summary) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		logger.Error("Failed to encode analytics snapshot", "error", err)
		return
	}

	if err := s.cache.Set(ctx, snapshotCacheKey, string(raw), snapshotCacheTTL); err != nil {
		logger.Error("Failed to cache analytics snapshot", "error", err)
	}
}

// aggregate tallies every distribution in a single pass. A response that
// selected three features increments three feature buckets; empty values are
// skipped rather than counted as a bucket of their own.
func aggregate(responses []*models.WaitlistResponse) *Summary {
	summary := &Summary{
		TotalResponses:                  len(responses),
		AgeDistribution:                 make(map[string]int),
		PrayerFrequencyDistribution:     make(map[string]int),
		ArabicUnderstandingDistribution: make(map[string]int),
		ARInterestDistribution:          make(map[string]int),
		FeaturesDistribution:            make(map[string]int),
		DailySubmissions:                []DailyCount{},
	}

	daily := make(map[string]int)

	for _, response := range responses {
		tally(summary.AgeDistribution, response.Age)
		tally(summary.PrayerFrequencyDistribution, response.PrayerFrequency)
		tally(summary.ArabicUnderstandingDistribution, response.ArabicUnderstanding)
		tally(summary.ARInterestDistribution, response.ARInterest)

		for _, feature := range response.Features {
			tally(summary.FeaturesDistribution, feature)
		}

		if !response.CreatedAt.IsZero() {
			// UTC so a row lands in the same calendar day as the CSV export.
			daily[response.CreatedAt.UTC().Format(constants.DayBucketFormat)]++
		}
	}

	for date, count := range daily {
		summary.DailySubmissions = append(summary.DailySubmissions, DailyCount{Date: date, Count: count})
	}

	// Date keys are ISO formatted, so a lexicographic sort is chronological.
	sort.Slice(summary.DailySubmissions, func(i, j int) bool {
		return summary.DailySubmissions[i].Date < summary.DailySubmissions[j].Date
	})

	return summary
}

func tally(buckets map[string]int, value string) {
	if value == "" {
		return
	}
	buckets[value]++
}

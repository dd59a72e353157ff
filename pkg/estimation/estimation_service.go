package estimation

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/pkg/freshness"
	"Genie-Expiry-Tracker/pkg/guideline"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var estimationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "genie_estimations_total",
		Help: "Expiry estimations by confidence level.",
	},
	[]string{"confidence"},
)

type (
	EstimationService interface {
		Estimate(name, category string, storage *domain.StorageCondition) domain.EstimationResult
		SearchGuidelines(term string) []domain.GuidelineEntry
		SafetyTips(category string) domain.SafetyTipsResponse
		GuidelineVersion() int
		GuidelineCount() int
	}

	estimationService struct {
		guidelines guideline.GuidelineRepository
		now        func() time.Time
	}
)

func NewEstimationService(guidelines guideline.GuidelineRepository, now func() time.Time) EstimationService {
	if now == nil {
		now = time.Now
	}
	return &estimationService{
		guidelines: guidelines,
		now:        now,
	}
}

// Estimate never fails. When no guideline covers the item under the
// resolved storage condition it falls back to the category default with
// low confidence.
func (s *estimationService) Estimate(name, category string, storage *domain.StorageCondition) domain.EstimationResult {
	resolved := ResolveStorage(category, storage)
	today := freshness.Truncate(s.now())

	if match, ok := s.guidelines.Lookup(name); ok {
		if days, ok := match.Entry.DaysFor(resolved); ok {
			confidence := domain.ConfidenceMedium
			if match.Exact {
				confidence = domain.ConfidenceHigh
			}
			entry := match.Entry
			estimationsTotal.WithLabelValues(string(confidence)).Inc()
			return domain.EstimationResult{
				Found:           true,
				EstimatedDate:   today.AddDate(0, 0, days).Format(domain.DateLayout),
				DaysFromNow:     days,
				StorageType:     resolved,
				Confidence:      confidence,
				MatchedName:     entry.Name,
				Guideline:       &entry,
				Recommendations: StorageRecommendations(resolved),
			}
		}
	}

	days := FallbackDays(category)
	estimationsTotal.WithLabelValues(string(domain.ConfidenceLow)).Inc()
	return domain.EstimationResult{
		Found:           false,
		EstimatedDate:   today.AddDate(0, 0, days).Format(domain.DateLayout),
		DaysFromNow:     days,
		StorageType:     resolved,
		Confidence:      domain.ConfidenceLow,
		Recommendations: StorageRecommendations(resolved),
	}
}

func (s *estimationService) SearchGuidelines(term string) []domain.GuidelineEntry {
	return s.guidelines.Search(term)
}

func (s *estimationService) SafetyTips(category string) domain.SafetyTipsResponse {
	return domain.SafetyTipsResponse{
		Category: category,
		Tips:     SafetyTips(category),
	}
}

func (s *estimationService) GuidelineVersion() int {
	return s.guidelines.Version()
}

func (s *estimationService) GuidelineCount() int {
	return len(s.guidelines.Entries())
}

// ResolveStorage picks the override, then the category default, then refrigerator.
func ResolveStorage(category string, override *domain.StorageCondition) domain.StorageCondition {
	if override != nil && *override != "" {
		return *override
	}
	if storage, ok := domain.CategoryStorage[category]; ok {
		return storage
	}
	return domain.StorageRefrigerator
}

func FallbackDays(category string) int {
	if days, ok := domain.CategoryFallbackDays[category]; ok {
		return days
	}
	return domain.DefaultFallbackDays
}

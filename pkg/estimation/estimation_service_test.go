package estimation

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/pkg/guideline"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 22, 45, 0, 0, time.UTC)

func newTestService(t *testing.T) EstimationService {
	t.Helper()
	repo, err := guideline.NewGuidelineRepository(16)
	require.NoError(t, err)
	return NewEstimationService(repo, func() time.Time { return fixedNow })
}

func storagePtr(s domain.StorageCondition) *domain.StorageCondition {
	return &s
}

func TestEstimate_GuidelineMatches(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name        string
		item        string
		category    string
		storage     *domain.StorageCondition
		wantDays    int
		wantDate    string
		wantConf    domain.Confidence
		wantStorage domain.StorageCondition
		wantMatched string
	}{
		{
			name:        "exact match uses category storage",
			item:        "Milk",
			category:    domain.CategoryDairy,
			wantDays:    7,
			wantDate:    "2024-03-08",
			wantConf:    domain.ConfidenceHigh,
			wantStorage: domain.StorageRefrigerator,
			wantMatched: "Milk",
		},
		{
			name:        "substring match is medium confidence",
			item:        "whole milk",
			category:    domain.CategoryDairy,
			wantDays:    7,
			wantDate:    "2024-03-08",
			wantConf:    domain.ConfidenceMedium,
			wantStorage: domain.StorageRefrigerator,
			wantMatched: "Milk",
		},
		{
			name:        "pantry resolves to room storage",
			item:        "Bread",
			category:    domain.CategoryPantry,
			wantDays:    3,
			wantDate:    "2024-03-04",
			wantConf:    domain.ConfidenceHigh,
			wantStorage: domain.StorageRoom,
			wantMatched: "Bread",
		},
		{
			name:        "override beats category",
			item:        "Milk",
			category:    domain.CategoryDairy,
			storage:     storagePtr(domain.StorageFreezer),
			wantDays:    90,
			wantDate:    "2024-05-30",
			wantConf:    domain.ConfidenceHigh,
			wantStorage: domain.StorageFreezer,
			wantMatched: "Milk",
		},
		{
			name:        "unknown category defaults to refrigerator",
			item:        "Yogurt",
			category:    "Snacks",
			wantDays:    21,
			wantDate:    "2024-03-22",
			wantConf:    domain.ConfidenceHigh,
			wantStorage: domain.StorageRefrigerator,
			wantMatched: "Yogurt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Estimate(tt.item, tt.category, tt.storage)
			assert.True(t, got.Found)
			assert.Equal(t, tt.wantDays, got.DaysFromNow)
			assert.Equal(t, tt.wantDate, got.EstimatedDate)
			assert.Equal(t, tt.wantConf, got.Confidence)
			assert.Equal(t, tt.wantStorage, got.StorageType)
			assert.Equal(t, tt.wantMatched, got.MatchedName)
			require.NotNil(t, got.Guideline)
			assert.Equal(t, StorageRecommendations(tt.wantStorage), got.Recommendations)
		})
	}
}

func TestEstimate_FallsBackPerCategory(t *testing.T) {
	svc := newTestService(t)

	want := map[string]int{
		domain.CategoryDairy:      7,
		domain.CategoryMeat:       3,
		domain.CategoryVegetables: 7,
		domain.CategoryFruits:     5,
		domain.CategoryPantry:     30,
		domain.CategoryFrozen:     90,
		domain.CategoryBeverages:  7,
		domain.CategoryOther:      7,
		"Unrecognized":            7,
		"":                        7,
	}

	for category, days := range want {
		got := svc.Estimate("Xyzzy", category, nil)
		assert.False(t, got.Found, category)
		assert.Equal(t, domain.ConfidenceLow, got.Confidence, category)
		assert.Equal(t, days, got.DaysFromNow, category)
		assert.Equal(t, fixedNow.AddDate(0, 0, days).Format(domain.DateLayout), got.EstimatedDate, category)
		assert.Nil(t, got.Guideline, category)
		assert.Empty(t, got.MatchedName, category)
	}
}

func TestEstimate_NotRecommendedStorageFallsThrough(t *testing.T) {
	svc := newTestService(t)

	got := svc.Estimate("Lettuce", domain.CategoryFrozen, nil)
	assert.False(t, got.Found)
	assert.Equal(t, domain.ConfidenceLow, got.Confidence)
	assert.Equal(t, 90, got.DaysFromNow)
	assert.Equal(t, domain.StorageFreezer, got.StorageType)

	got = svc.Estimate("Beer", domain.CategoryBeverages, storagePtr(domain.StorageFreezer))
	assert.False(t, got.Found)
	assert.Equal(t, 7, got.DaysFromNow)
}

func TestEstimate_GuidelineIsIndependentCopy(t *testing.T) {
	svc := newTestService(t)

	got := svc.Estimate("Milk", domain.CategoryDairy, nil)
	require.NotNil(t, got.Guideline)
	*got.Guideline.Refrigerator = 1

	again := svc.Estimate("Milk", domain.CategoryDairy, nil)
	assert.Equal(t, 7, again.DaysFromNow)
	require.NotNil(t, again.Guideline)
	assert.Equal(t, 7, *again.Guideline.Refrigerator)
}

func TestResolveStorage(t *testing.T) {
	assert.Equal(t, domain.StorageRoom, ResolveStorage(domain.CategoryPantry, nil))
	assert.Equal(t, domain.StorageFreezer, ResolveStorage(domain.CategoryFrozen, nil))
	assert.Equal(t, domain.StorageRefrigerator, ResolveStorage("whatever", nil))
	assert.Equal(t, domain.StorageRoom, ResolveStorage(domain.CategoryFrozen, storagePtr(domain.StorageRoom)))
	assert.Equal(t, domain.StorageFreezer, ResolveStorage(domain.CategoryFrozen, storagePtr("")))
}

func TestSafetyTips(t *testing.T) {
	svc := newTestService(t)

	dairy := svc.SafetyTips(domain.CategoryDairy)
	assert.Equal(t, domain.CategoryDairy, dairy.Category)
	assert.Len(t, dairy.Tips, 3)
	assert.Contains(t, dairy.Tips[2], "milk")

	assert.Equal(t, generalTips, SafetyTips(domain.CategoryPantry))
}

func TestStorageRecommendations_ReturnsCopy(t *testing.T) {
	recs := StorageRecommendations(domain.StorageRoom)
	recs[0] = "changed"
	assert.Equal(t, "Store in cool, dry place", StorageRecommendations(domain.StorageRoom)[0])
	assert.Equal(t, StorageRecommendations(domain.StorageRefrigerator), StorageRecommendations("cellar"))
}

func TestGuidelineAccessors(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, 1, svc.GuidelineVersion())
	assert.Equal(t, 49, svc.GuidelineCount())
	assert.Len(t, svc.SearchGuidelines("cheese"), 2)
}

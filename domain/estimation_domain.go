package domain

import "errors"

type (
	StorageCondition string
	Confidence       string
)

const (
	StorageRefrigerator StorageCondition = "refrigerator"
	StorageFreezer      StorageCondition = "freezer"
	StorageRoom         StorageCondition = "room"

	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"

	CategoryDairy      = "Dairy"
	CategoryMeat       = "Meat"
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryPantry     = "Pantry"
	CategoryFrozen     = "Frozen"
	CategoryBeverages  = "Beverages"
	CategoryOther      = "Other"

	DefaultFallbackDays = 7
)

var (
	MessageSuccessEstimate      = "expiry date estimated successfully"
	MessageSuccessSearchTable   = "guidelines retrieved successfully"
	MessageSuccessGetSafetyTips = "safety tips retrieved successfully"

	MessageFailedEstimate = "failed to estimate expiry date"

	ErrInvalidStorageType = errors.New("invalid storage type")

	// Categories lists the supported categories in display order.
	Categories = []string{
		CategoryDairy,
		CategoryMeat,
		CategoryVegetables,
		CategoryFruits,
		CategoryPantry,
		CategoryFrozen,
		CategoryBeverages,
		CategoryOther,
	}

	CategoryStorage = map[string]StorageCondition{
		CategoryDairy:      StorageRefrigerator,
		CategoryMeat:       StorageRefrigerator,
		CategoryVegetables: StorageRefrigerator,
		CategoryFruits:     StorageRefrigerator,
		CategoryPantry:     StorageRoom,
		CategoryFrozen:     StorageFreezer,
		CategoryBeverages:  StorageRefrigerator,
		CategoryOther:      StorageRefrigerator,
	}

	CategoryFallbackDays = map[string]int{
		CategoryDairy:      7,
		CategoryMeat:       3,
		CategoryVegetables: 7,
		CategoryFruits:     5,
		CategoryPantry:     30,
		CategoryFrozen:     90,
		CategoryBeverages:  7,
		CategoryOther:      7,
	}
)

func ParseStorageCondition(s string) (StorageCondition, error) {
	switch StorageCondition(s) {
	case StorageRefrigerator, StorageFreezer, StorageRoom:
		return StorageCondition(s), nil
	}
	return "", ErrInvalidStorageType
}

type (
	// GuidelineEntry holds shelf-life day counts per storage condition.
	// A nil count means the condition is not recommended for the item.
	GuidelineEntry struct {
		Name         string `yaml:"name" json:"name"`
		Refrigerator *int   `yaml:"refrigerator" json:"refrigerator"`
		Freezer      *int   `yaml:"freezer" json:"freezer"`
		Room         *int   `yaml:"room" json:"room"`
	}

	EstimateRequest struct {
		Name     string `query:"name" validate:"required,notblank"`
		Category string `query:"category" validate:"omitempty"`
		Storage  string `query:"storage" validate:"omitempty,oneof=refrigerator freezer room"`
	}

	EstimationResult struct {
		Found           bool             `json:"found"`
		EstimatedDate   string           `json:"estimatedDate"`
		DaysFromNow     int              `json:"daysFromNow"`
		StorageType     StorageCondition `json:"storageType"`
		Confidence      Confidence       `json:"confidence"`
		MatchedName     string           `json:"matchedName,omitempty"`
		Guideline       *GuidelineEntry  `json:"guideline,omitempty"`
		Recommendations []string         `json:"recommendations"`
	}

	SafetyTipsResponse struct {
		Category string   `json:"category"`
		Tips     []string `json:"tips"`
	}
)

// Clone returns a copy whose day counts are not shared with g.
func (g GuidelineEntry) Clone() GuidelineEntry {
	return GuidelineEntry{
		Name:         g.Name,
		Refrigerator: cloneDays(g.Refrigerator),
		Freezer:      cloneDays(g.Freezer),
		Room:         cloneDays(g.Room),
	}
}

func cloneDays(days *int) *int {
	if days == nil {
		return nil
	}
	d := *days
	return &d
}

func (g GuidelineEntry) DaysFor(storage StorageCondition) (int, bool) {
	var days *int
	switch storage {
	case StorageRefrigerator:
		days = g.Refrigerator
	case StorageFreezer:
		days = g.Freezer
	case StorageRoom:
		days = g.Room
	}
	if days == nil || *days <= 0 {
		return 0, false
	}
	return *days, true
}

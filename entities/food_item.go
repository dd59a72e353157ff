package entities

import (
	"Genie-Expiry-Tracker/domain"
	"time"
)

// FoodItem is the stored record. Freshness is never stored here; it is
// derived from ExpiryDate whenever the item is read.
type FoodItem struct {
	ID             int64
	Name           string
	Category       string
	ExpiryDate     time.Time
	Quantity       string
	Notes          string
	EstimationUsed bool
	EstimationInfo *domain.EstimationResult
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Clone returns a copy that shares no pointers with the original.
func (f *FoodItem) Clone() *FoodItem {
	c := *f
	if f.EstimationInfo != nil {
		info := *f.EstimationInfo
		info.Recommendations = append([]string(nil), f.EstimationInfo.Recommendations...)
		if f.EstimationInfo.Guideline != nil {
			g := f.EstimationInfo.Guideline.Clone()
			info.Guideline = &g
		}
		c.EstimationInfo = &info
	}
	if f.UpdatedAt != nil {
		t := *f.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

package domain

import (
	"errors"
	"time"
)

type ExpiryStatus string

const (
	StatusFresh    ExpiryStatus = "fresh"
	StatusWarning  ExpiryStatus = "warning"
	StatusCritical ExpiryStatus = "critical"
	StatusExpired  ExpiryStatus = "expired"

	DefaultQuantity     = "1"
	DefaultExpiringDays = 7
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetFoodItem       = "food item retrieved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedGetFoodItem       = "failed to retrieve food item"
	MessageFailedGetExpiringItems  = "failed to retrieve expiring food items"
	MessageFailedGetExpiredItems   = "failed to retrieve expired food items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidFoodItemID = errors.New("invalid food item ID")
)

type (
	AddFoodItemRequest struct {
		Name          string `json:"name" validate:"required,notblank"`
		Category      string `json:"category" validate:"omitempty"`
		ExpiryDate    string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
		Quantity      string `json:"quantity" validate:"omitempty"`
		Notes         string `json:"notes" validate:"omitempty"`
		UseEstimation bool   `json:"useEstimation"`
	}

	// UpdateFoodItemRequest carries a partial update; nil fields keep their value.
	UpdateFoodItemRequest struct {
		Name       *string `json:"name" validate:"omitempty,notblank"`
		Category   *string `json:"category" validate:"omitempty"`
		ExpiryDate *string `json:"expiryDate" validate:"omitempty"`
		Quantity   *string `json:"quantity" validate:"omitempty"`
		Notes      *string `json:"notes" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID              int64             `json:"id"`
		Name            string            `json:"name"`
		Category        string            `json:"category"`
		ExpiryDate      string            `json:"expiryDate"`
		Quantity        string            `json:"quantity"`
		Notes           string            `json:"notes"`
		DaysUntilExpiry int               `json:"daysUntilExpiry"`
		Status          ExpiryStatus      `json:"status"`
		AddedDate       string            `json:"addedDate"`
		CreatedAt       time.Time         `json:"createdAt"`
		UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
		EstimationUsed  bool              `json:"estimationUsed"`
		EstimationInfo  *EstimationResult `json:"estimationInfo,omitempty"`
	}

	DashboardStatsResponse struct {
		TotalItems     int `json:"total_items"`
		FreshItems     int `json:"fresh_items"`
		WarningItems   int `json:"warning_items"`
		CriticalItems  int `json:"critical_items"`
		ExpiredItems   int `json:"expired_items"`
		EstimatedItems int `json:"estimated_items"`
	}
)

package food

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/entities"
	"Genie-Expiry-Tracker/pkg/estimation"
	"Genie-Expiry-Tracker/pkg/freshness"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var foodItemsAdded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "genie_food_items_added_total",
		Help: "Food items added to the inventory.",
	},
	[]string{"estimated"},
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id int64, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id int64) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id int64) (domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, days int) ([]domain.FoodItemResponse, error)
		GetExpiredItems(ctx context.Context) ([]domain.FoodItemResponse, error)
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		estimator      estimation.EstimationService
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, estimator estimation.EstimationService, now func() time.Time) FoodService {
	if now == nil {
		now = time.Now
	}
	return &foodService{
		foodRepository: foodRepository,
		estimator:      estimator,
		now:            now,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodItemResponse{}, domain.ErrNameRequired
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}

	quantity := req.Quantity
	if quantity == "" {
		quantity = domain.DefaultQuantity
	}

	foodItem := &entities.FoodItem{
		Name:      name,
		Category:  category,
		Quantity:  quantity,
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}

	if req.ExpiryDate == "" || req.UseEstimation {
		result := s.estimator.Estimate(name, category, nil)
		expiryDate, err := parseDate(result.EstimatedDate)
		if err != nil {
			return domain.FoodItemResponse{}, fmt.Errorf("estimated date %q: %w", result.EstimatedDate, err)
		}
		foodItem.ExpiryDate = expiryDate
		foodItem.EstimationUsed = true
		foodItem.EstimationInfo = &result
		foodItem.Notes = appendEstimationNote(foodItem.Notes, result)
	} else {
		expiryDate, err := parseDate(req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		foodItem.ExpiryDate = expiryDate
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItemsAdded.WithLabelValues(fmt.Sprint(foodItem.EstimationUsed)).Inc()
	if foodItem.EstimationUsed {
		log.Debugf("food item %d estimated at %d days (%s)", foodItem.ID, foodItem.EstimationInfo.DaysFromNow, foodItem.EstimationInfo.Confidence)
	}

	return s.toResponse(foodItem, s.now()), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id int64, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.UpdateFoodItem(ctx, id, func(foodItem *entities.FoodItem) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return domain.ErrNameRequired
			}
			foodItem.Name = name
		}

		if req.Category != nil && *req.Category != "" {
			foodItem.Category = *req.Category
		}

		if req.ExpiryDate != nil && *req.ExpiryDate != "" {
			expiryDate, err := parseDate(*req.ExpiryDate)
			if err != nil {
				return err
			}
			foodItem.ExpiryDate = expiryDate
		}

		if req.Quantity != nil && *req.Quantity != "" {
			foodItem.Quantity = *req.Quantity
		}

		if req.Notes != nil {
			foodItem.Notes = *req.Notes
		}

		updatedAt := s.now()
		foodItem.UpdatedAt = &updatedAt
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(foodItem, s.now()), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id int64) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.DeleteFoodItem(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(foodItem, s.now()), nil
}

// GetFoodItems returns every item ordered by expiry date. Items sharing an
// expiry date keep their insertion order.
func (s *foodService) GetFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(foodItems, func(i, j int) bool {
		return foodItems[i].ExpiryDate.Before(foodItems[j].ExpiryDate)
	})

	now := s.now()
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, s.toResponse(item, now))
	}

	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id int64) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(foodItem, s.now()), nil
}

func (s *foodService) GetExpiringItems(ctx context.Context, days int) ([]domain.FoodItemResponse, error) {
	return s.filter(ctx, func(item domain.FoodItemResponse) bool {
		return item.DaysUntilExpiry >= 0 && item.DaysUntilExpiry <= days
	})
}

func (s *foodService) GetExpiredItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	return s.filter(ctx, func(item domain.FoodItemResponse) bool {
		return item.DaysUntilExpiry < 0
	})
}

func (s *foodService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	items, err := s.GetFoodItems(ctx)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		switch item.Status {
		case domain.StatusFresh:
			stats.FreshItems++
		case domain.StatusWarning:
			stats.WarningItems++
		case domain.StatusCritical:
			stats.CriticalItems++
		case domain.StatusExpired:
			stats.ExpiredItems++
		}
		if item.EstimationUsed {
			stats.EstimatedItems++
		}
	}

	return stats, nil
}

func (s *foodService) filter(ctx context.Context, keep func(domain.FoodItemResponse) bool) ([]domain.FoodItemResponse, error) {
	items, err := s.GetFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// toResponse derives freshness against now; it is the only place the
// derived fields are produced.
func (s *foodService) toResponse(item *entities.FoodItem, now time.Time) domain.FoodItemResponse {
	result := freshness.Classify(item.ExpiryDate, now)

	return domain.FoodItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		ExpiryDate:      item.ExpiryDate.Format(domain.DateLayout),
		Quantity:        item.Quantity,
		Notes:           item.Notes,
		DaysUntilExpiry: result.DaysUntilExpiry,
		Status:          result.Status,
		AddedDate:       item.CreatedAt.Format(domain.DateLayout),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
		EstimationUsed:  item.EstimationUsed,
		EstimationInfo:  item.EstimationInfo,
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return date, nil
}

func appendEstimationNote(notes string, result domain.EstimationResult) string {
	note := fmt.Sprintf("FDA Estimated: %d days (%s confidence)", result.DaysFromNow, result.Confidence)
	if notes == "" {
		return note
	}
	return notes + " | " + note
}

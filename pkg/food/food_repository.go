package food

import (
	"Genie-Expiry-Tracker/entities"
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrRecordNotFound = errors.New("record not found")

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id int64) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, id int64, apply func(foodItem *entities.FoodItem) error) (*entities.FoodItem, error)
		DeleteFoodItem(ctx context.Context, id int64) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context) ([]*entities.FoodItem, error)
		Count(ctx context.Context) (int, error)
	}

	// foodRepository keeps items in insertion order. State lives only as
	// long as the process does.
	foodRepository struct {
		mu     sync.RWMutex
		items  []*entities.FoodItem
		nextID int64
	}
)

func NewFoodRepository() FoodRepository {
	return &foodRepository{nextID: 1}
}

// AddFoodItem assigns the next identifier to foodItem and stores a copy.
// Identifiers are never reused, even after deletes.
func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	foodItem.ID = r.nextID
	r.nextID++
	r.items = append(r.items, foodItem.Clone())
	return nil
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id int64) (*entities.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrRecordNotFound
	}
	return r.items[idx].Clone(), nil
}

// UpdateFoodItem runs apply on a copy of the stored item and replaces the
// record only if apply succeeds.
func (r *foodRepository) UpdateFoodItem(ctx context.Context, id int64, apply func(foodItem *entities.FoodItem) error) (*entities.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrRecordNotFound
	}

	updated := r.items[idx].Clone()
	if err := apply(updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.items[idx] = updated
	return updated.Clone(), nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id int64) (*entities.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrRecordNotFound
	}

	removed := r.items[idx]
	r.items = slices.Delete(r.items, idx, idx+1)
	return removed, nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foodItems := make([]*entities.FoodItem, len(r.items))
	for i, item := range r.items {
		foodItems[i] = item.Clone()
	}
	return foodItems, nil
}

func (r *foodRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *foodRepository) indexOf(id int64) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

package food

import (
	"Genie-Expiry-Tracker/entities"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodRepository_IdentifiersAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		item := &entities.FoodItem{Name: "item"}
		require.NoError(t, repo.AddFoodItem(ctx, item))
		assert.False(t, seen[item.ID], "id %d reused", item.ID)
		seen[item.ID] = true

		if i%2 == 0 {
			_, err := repo.DeleteFoodItem(ctx, item.ID)
			require.NoError(t, err)
		}
	}

	assert.Len(t, seen, 5)
	assert.True(t, seen[1])
	assert.True(t, seen[5])

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFoodRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository()

	item := &entities.FoodItem{Name: "Milk"}
	require.NoError(t, repo.AddFoodItem(ctx, item))

	removed, err := repo.DeleteFoodItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", removed.Name)

	_, err = repo.DeleteFoodItem(ctx, item.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.GetFoodItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFoodRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository()

	item := &entities.FoodItem{Name: "Milk"}
	require.NoError(t, repo.AddFoodItem(ctx, item))
	item.Name = "mutated after add"

	got, err := repo.GetFoodItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)

	got.Name = "mutated after get"
	items, err := repo.GetFoodItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestFoodRepository_FailedUpdateIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository()

	item := &entities.FoodItem{Name: "Milk", Quantity: "1"}
	require.NoError(t, repo.AddFoodItem(ctx, item))

	boom := errors.New("boom")
	_, err := repo.UpdateFoodItem(ctx, item.ID, func(f *entities.FoodItem) error {
		f.Quantity = "99"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetFoodItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", got.Quantity)

	_, err = repo.UpdateFoodItem(ctx, 42, func(*entities.FoodItem) error { return nil })
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFoodRepository_UpdateKeepsIdentifier(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository()

	item := &entities.FoodItem{Name: "Milk"}
	require.NoError(t, repo.AddFoodItem(ctx, item))

	updated, err := repo.UpdateFoodItem(ctx, item.ID, func(f *entities.FoodItem) error {
		f.ID = 1000
		f.Name = "Oat Milk"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Oat Milk", updated.Name)
}

func TestFoodRepository_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository()

	const workers, perWorker = 8, 50
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[int64]struct{}{}
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				item := &entities.FoodItem{Name: "item"}
				if err := repo.AddFoodItem(ctx, item); err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				ids[item.ID] = struct{}{}
				mu.Unlock()
				_, _ = repo.GetFoodItems(ctx)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers*perWorker)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, count)
}

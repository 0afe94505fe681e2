package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympulse/internal/errors"
	"gympulse/internal/model"
)

func newTestClass(t *testing.T, repo ClassRepository, capacity, spotsLeft int) *model.Class {
	t.Helper()
	class := &model.Class{
		Name:      "Yoga Basics",
		Capacity:  capacity,
		SpotsLeft: spotsLeft,
	}
	require.NoError(t, repo.Create(context.Background(), class))
	return class
}

func TestClassRepository_ReserveSpot(t *testing.T) {
	ctx := context.Background()
	repo := NewClassRepository(NewStore())
	class := newTestClass(t, repo, 10, 3)

	reserved, err := repo.ReserveSpot(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reserved.SpotsLeft)

	stored, err := repo.FindByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.SpotsLeft)
}

func TestClassRepository_ReserveSpot_Full(t *testing.T) {
	ctx := context.Background()
	repo := NewClassRepository(NewStore())
	class := newTestClass(t, repo, 10, 0)

	reserved, err := repo.ReserveSpot(ctx, class.ID)
	assert.ErrorIs(t, err, errors.ErrClassFull)
	assert.Nil(t, reserved)

	stored, err := repo.FindByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.SpotsLeft)
}

func TestClassRepository_ReserveSpot_NotFound(t *testing.T) {
	repo := NewClassRepository(NewStore())

	_, err := repo.ReserveSpot(context.Background(), 99)
	assert.ErrorIs(t, err, errors.ErrClassNotFound)
}

func TestClassRepository_ReleaseSpot(t *testing.T) {
	ctx := context.Background()
	repo := NewClassRepository(NewStore())
	class := newTestClass(t, repo, 10, 3)

	require.NoError(t, repo.ReleaseSpot(ctx, class.ID))

	stored, err := repo.FindByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.SpotsLeft)
}

func TestClassRepository_ReleaseSpot_ClampedAtCapacity(t *testing.T) {
	ctx := context.Background()
	repo := NewClassRepository(NewStore())
	class := newTestClass(t, repo, 10, 10)

	require.NoError(t, repo.ReleaseSpot(ctx, class.ID))

	stored, err := repo.FindByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.SpotsLeft)
}

func TestClassRepository_ReleaseSpot_MissingClassIsNoop(t *testing.T) {
	repo := NewClassRepository(NewStore())
	assert.NoError(t, repo.ReleaseSpot(context.Background(), 99))
}

// Concurrent reservations against the same class must never hand out more
// spots than remain.
func TestClassRepository_ReserveSpot_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewClassRepository(NewStore())
	class := newTestClass(t, repo, 20, 5)

	const attempts = 50
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ReserveSpot(ctx, class.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, errors.ErrClassFull)
		}
	}
	assert.Equal(t, 5, succeeded)

	stored, err := repo.FindByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.SpotsLeft)
}

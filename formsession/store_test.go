package formsession

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGetDelete(t *testing.T) {
	f := newFixture(t)

	s := f.store.Create()
	assert.NotEmpty(t, s.ID)

	got, err := f.store.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, f.store.Len())

	f.store.Delete(s.ID)
	_, err = f.store.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, f.store.Len())
}

func TestStore_SweepExpiresIdleSessions(t *testing.T) {
	f := newFixture(t)
	clock := time.Date(2025, 9, 8, 13, 0, 0, 0, time.UTC)
	f.store.now = func() time.Time { return clock }

	idle := f.store.Create()
	clock = clock.Add(50 * time.Minute)
	active := f.store.Create()

	clock = clock.Add(20 * time.Minute)
	assert.Equal(t, 1, f.store.Sweep())

	_, err := f.store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.store.Get(active.ID)
	assert.NoError(t, err)
}

func TestStore_ActivityKeepsSessionAlive(t *testing.T) {
	f := newFixture(t)
	clock := time.Date(2025, 9, 8, 13, 0, 0, 0, time.UTC)
	f.store.now = func() time.Time { return clock }

	s := f.store.Create()
	clock = clock.Add(50 * time.Minute)
	s.Validate()
	clock = clock.Add(50 * time.Minute)

	assert.Zero(t, f.store.Sweep())
}

func TestStore_SessionsWithoutCatalog(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	store := NewStore(ctx, Deps{SearchDelay: time.Millisecond}, time.Hour)

	s := store.Create()
	s.SetSearchQuery("watch")
	require.Eventually(t, func() bool { return !s.SearchState().IsSearching }, time.Second, 5*time.Millisecond)
	assert.Empty(t, s.SearchState().Results)

	_, err := s.AddProduct(ctx, "1")
	assert.ErrorIs(t, err, ErrNoCatalog)
}

package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dali-debug/Jinen/internal/records"
)

type countingLister struct {
	calls     int
	nurseries []records.Nursery
	err       error
}

func (l *countingLister) ListNurseries(ctx context.Context) ([]records.Nursery, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return append([]records.Nursery(nil), l.nurseries...), nil
}

func TestNurseryCacheLoadsOnce(t *testing.T) {
	lister := &countingLister{nurseries: []records.Nursery{
		{ID: "nursery:a", Name: "Sunshine"},
	}}
	cache := NewNurseryCache(lister)

	for i := 0; i < 3; i++ {
		nurseries, err := cache.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, nurseries, 1)
	}

	assert.Equal(t, 1, lister.calls)
}

func TestNurseryCacheInvalidate(t *testing.T) {
	lister := &countingLister{nurseries: []records.Nursery{
		{ID: "nursery:a", Name: "Sunshine"},
	}}
	cache := NewNurseryCache(lister)

	_, err := cache.List(context.Background())
	require.NoError(t, err)

	lister.nurseries = append(lister.nurseries, records.Nursery{ID: "nursery:b", Name: "Blue Sky"})
	cache.Invalidate()

	nurseries, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, nurseries, 2)
	assert.Equal(t, 2, lister.calls)
}

func TestNurseryCacheDoesNotCacheErrors(t *testing.T) {
	lister := &countingLister{err: errors.New("database down")}
	cache := NewNurseryCache(lister)

	_, err := cache.List(context.Background())
	assert.Error(t, err)

	// The failure is not cached: the store recovers and the next read
	// loads normally.
	lister.err = nil
	lister.nurseries = []records.Nursery{{ID: "nursery:a", Name: "Sunshine"}}

	nurseries, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, nurseries, 1)
	assert.Equal(t, 2, lister.calls)
}

func TestNurseryCacheHandsOutCopies(t *testing.T) {
	lister := &countingLister{nurseries: []records.Nursery{
		{ID: "nursery:a", Name: "Sunshine"},
	}}
	cache := NewNurseryCache(lister)

	first, err := cache.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "Mutated"

	second, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sunshine", second[0].Name)
}

package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/register-engine/history"
	"github.com/warp/register-engine/register"
	"github.com/warp/register-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_LoadEmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ts := time.Date(2026, time.August, 31, 21, 30, 0, 0, time.UTC)
	in := []history.Entry{
		{
			ID:            "entry-2",
			Timestamp:     ts.Add(time.Hour),
			TotalCash:     register.Yen(120000),
			RecordedSales: register.Yen(45000),
			NetCashSales:  register.MustParseDecimal("46570"),
			Difference:    register.MustParseDecimal("1570"),
		},
		{
			ID:            "entry-1",
			Timestamp:     ts,
			TotalCash:     register.Yen(25000),
			RecordedSales: register.Yen(5000),
			NetCashSales:  register.Yen(5000),
			Difference:    register.Yen(0),
		},
	}
	require.NoError(t, store.Persist(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "entry-2", out[0].ID, "stored order preserved")
	assert.True(t, out[0].Timestamp.Equal(ts.Add(time.Hour)))
	assert.True(t, out[0].Difference.Equal(register.Yen(1570)))
	assert.Equal(t, "entry-1", out[1].ID)
	assert.True(t, out[1].TotalCash.Equal(register.Yen(25000)))
	assert.True(t, out[1].Difference.IsZero())
}

func TestStore_PersistOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Persist(ctx, []history.Entry{
		{ID: "a", Timestamp: time.Now().UTC()},
		{ID: "b", Timestamp: time.Now().UTC()},
	}))
	require.NoError(t, store.Persist(ctx, []history.Entry{
		{ID: "b", Timestamp: time.Now().UTC()},
	}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestStore_PersistEmptyClears(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Persist(ctx, []history.Entry{
		{ID: "a", Timestamp: time.Now().UTC()},
	}))
	require.NoError(t, store.Persist(ctx, []history.Entry{}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

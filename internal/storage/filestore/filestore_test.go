package filestore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminainteriors/lumina-be/internal/models"
)

func TestReadMissingFileIsEmptyList(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var entries []models.PortfolioEntry
	require.NoError(t, store.Read(PortfolioFile, &entries))
	require.Empty(t, entries)
}

func TestWriteThenRead(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	in := []models.ServiceEntry{
		{ID: 1, Title: "Interior Design", Sequence: 0},
		{ID: 2, Title: "Space Planning", Sequence: 1},
	}
	require.NoError(t, store.Write(ServicesFile, in))

	var out []models.ServiceEntry
	require.NoError(t, store.Read(ServicesFile, &out))
	require.Equal(t, in, out)
}

func TestUpdateMutatesInPlace(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(PortfolioFile, []models.PortfolioEntry{
		{ID: 1, Title: "Loft"},
		{ID: 2, Title: "Villa"},
	}))

	err = Update(store, PortfolioFile, func(items []models.PortfolioEntry) []models.PortfolioEntry {
		kept := items[:0]
		for _, item := range items {
			if item.ID != 1 {
				kept = append(kept, item)
			}
		}
		return kept
	})
	require.NoError(t, err)

	var out []models.PortfolioEntry
	require.NoError(t, store.Read(PortfolioFile, &out))
	require.Len(t, out, 1)
	require.Equal(t, int64(2), out[0].ID)
}

func TestConcurrentUpdatesDoNotDropWrites(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			err := Update(store, PortfolioFile, func(items []models.PortfolioEntry) []models.PortfolioEntry {
				return append(items, models.PortfolioEntry{ID: id})
			})
			require.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	var out []models.PortfolioEntry
	require.NoError(t, store.Read(PortfolioFile, &out))
	require.Len(t, out, writers)
}

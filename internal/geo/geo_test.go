package geo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/database"
)

func TestBuiltin(t *testing.T) {
	table := Builtin()

	assert.Equal(t, 24, table.Len())
	districts := table.Districts()
	assert.Equal(t, "Quận 1", districts[0])
	assert.Equal(t, "Huyện Củ Chi", districts[len(districts)-1])

	for _, d := range table.All() {
		assert.NotEmpty(t, d.Wards, d.Name)
	}

	wards, err := table.Wards("Quận 1")
	require.NoError(t, err)
	assert.Len(t, wards, 10)
	assert.Equal(t, "Phường Tân Định", wards[0])
	assert.Equal(t, "Phường Cầu Kho", wards[9])

	wards, err = table.Wards("Quận 3")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Phường 08", "Phường 07", "Phường 14", "Phường 12", "Phường 11", "Phường 13", "Phường 06",
		"Phường 09", "Phường 10", "Phường 04", "Phường 05", "Phường 03", "Phường 02", "Phường 01",
	}, wards)

	wards, err = table.Wards("Huyện Củ Chi")
	require.NoError(t, err)
	assert.Len(t, wards, 21)
	assert.Equal(t, "Thị trấn Củ Chi", wards[0])
}

func TestWards_UnknownDistrict(t *testing.T) {
	wards, err := Builtin().Wards("Quận 99")
	assert.ErrorIs(t, err, ErrUnknownDistrict)
	assert.Nil(t, wards)
	assert.False(t, Builtin().Has("Quận 99"))
}

func TestWards_ReturnsCopy(t *testing.T) {
	table := Builtin()
	wards, err := table.Wards("Quận 1")
	require.NoError(t, err)
	wards[0] = "mutated"

	again, err := table.Wards("Quận 1")
	require.NoError(t, err)
	assert.Equal(t, "Phường Tân Định", again[0])
}

func TestNewTable_Validation(t *testing.T) {
	cases := map[string][]District{
		"Empty":           nil,
		"No Name":         {{Name: "", Wards: []string{"A"}}},
		"Duplicate":       {{Name: "Quận 1", Wards: []string{"A"}}, {Name: "Quận 1", Wards: []string{"B"}}},
		"No Wards":        {{Name: "Quận 1"}},
		"Duplicate Ward":  {{Name: "Quận 1", Wards: []string{"A", "A"}}},
		"Empty Ward Name": {{Name: "Quận 1", Wards: []string{""}}},
	}
	for name, districts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewTable(districts)
			assert.Error(t, err)
		})
	}
}

func TestStore_SeedAndLoad(t *testing.T) {
	db, err := database.Connect(database.DriverSQLite, filepath.Join(t.TempDir(), "geo.db"))
	require.NoError(t, err)
	defer database.Close(db)

	store := NewStore(db)
	ctx := context.Background()

	t.Run("Empty Database", func(t *testing.T) {
		_, err := store.LoadTable(ctx)
		assert.ErrorContains(t, err, "no districts")
	})

	t.Run("Round Trip", func(t *testing.T) {
		require.NoError(t, store.Seed(ctx, Builtin()))

		loaded, err := store.LoadTable(ctx)
		require.NoError(t, err)
		assert.Equal(t, Builtin().All(), loaded.All())
	})

	t.Run("Reseed Replaces", func(t *testing.T) {
		small, err := NewTable([]District{{Name: "Quận 1", Wards: []string{"Phường Bến Nghé", "Phường Tân Định"}}})
		require.NoError(t, err)
		require.NoError(t, store.Seed(ctx, small))

		loaded, err := store.LoadTable(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Len())
		wards, err := loaded.Wards("Quận 1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Phường Bến Nghé", "Phường Tân Định"}, wards)
	})
}

func TestStore_SeedPersistsAcrossConnections(t *testing.T) {
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	ctx := context.Background()

	db, err := database.Connect(database.DriverSQLite, "")
	require.NoError(t, err)
	require.NoError(t, NewStore(db).Seed(ctx, Builtin()))
	require.NoError(t, database.Close(db))

	assert.FileExists(t, filepath.Join(dir, database.DefaultSQLiteDSN))

	db, err = database.Connect(database.DriverSQLite, "")
	require.NoError(t, err)
	defer database.Close(db)

	loaded, err := NewStore(db).LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, Builtin().All(), loaded.All())
}

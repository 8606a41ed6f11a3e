package repository

import (
	"context"
	"path/filepath"
	"testing"

	"inspectbook/internal/database"
	"inspectbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func sampleState() *domain.AppState {
	return &domain.AppState{
		User: &domain.User{
			PhoneOrEmail: "asel@example.com",
			LoginTime:    "2026-08-28T10:00:00Z",
		},
		IsAuthenticated: true,
		CRN:             "CRN4821",
		Profile: &domain.Profile{
			FullName: "Asel Nurlanova",
			Phone:    "+77001234567",
			Email:    "asel@example.com",
		},
		Orders: []domain.Order{
			{
				ID:           "ORD11756300000000",
				OrderNumber:  1,
				FullName:     "Asel Nurlanova",
				Phone:        "+77001234567",
				Email:        "asel@example.com",
				PropertyType: domain.PropertyApartment,
				ServiceType:  domain.ServiceDetailed,
				BHK:          2,
				Rooms:        1,
				Toilets:      1,
				Status:       domain.OrderPending,
				CreatedAt:    "2026-08-28T10:05:00Z",
			},
		},
		OrderCounter: 2,
	}
}

func TestSnapshot_SaveLoadRoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(testDB(t))
	ctx := context.Background()

	state := sampleState()
	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state, loaded)
}

func TestSnapshot_LoadAbsentReturnsNil(t *testing.T) {
	repo := NewSnapshotRepository(testDB(t))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSnapshot_CorruptedBlobIsAnError(t *testing.T) {
	db := testDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	require.NoError(t, putValue(ctx, db, stateKey, []byte("{not json")))

	_, err := repo.Load(ctx)
	assert.Error(t, err)
}

func TestSnapshot_LatestSaveWins(t *testing.T) {
	repo := NewSnapshotRepository(testDB(t))
	ctx := context.Background()

	first := sampleState()
	require.NoError(t, repo.Save(ctx, first))

	second := sampleState()
	second.CRN = "CRN9911"
	second.OrderCounter = 5
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CRN9911", loaded.CRN)
	assert.Equal(t, 5, loaded.OrderCounter)
}

func TestSnapshot_ClearIsIdempotent(t *testing.T) {
	repo := NewSnapshotRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleState()))
	require.NoError(t, repo.Clear(ctx))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, repo.Clear(ctx))
}

func TestSnapshot_NilOrdersNormalizedOnLoad(t *testing.T) {
	db := testDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	require.NoError(t, putValue(ctx, db, stateKey, []byte(`{"user":null,"isAuthenticated":false,"orderCounter":1}`)))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.NotNil(t, loaded.Orders)
	assert.Empty(t, loaded.Orders)
}

func TestPreference_ThemeRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()

	theme, err := repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, repo.SetTheme(ctx, "dark"))

	theme, err = repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	require.NoError(t, repo.SetTheme(ctx, "light"))

	theme, err = repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}

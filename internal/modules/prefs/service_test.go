package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockThemeStore struct {
	mock.Mock
}

func (m *MockThemeStore) GetTheme(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockThemeStore) SetTheme(ctx context.Context, theme string) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func TestGetTheme_DefaultsToSystem(t *testing.T) {
	store := new(MockThemeStore)
	store.On("GetTheme", mock.Anything).Return("", nil)

	svc := NewService(store)
	theme, err := svc.GetTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, theme)
}

func TestGetTheme_ReturnsSavedValue(t *testing.T) {
	store := new(MockThemeStore)
	store.On("GetTheme", mock.Anything).Return(ThemeDark, nil)

	svc := NewService(store)
	theme, err := svc.GetTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}

func TestGetTheme_UnknownStoredValueFallsBack(t *testing.T) {
	store := new(MockThemeStore)
	store.On("GetTheme", mock.Anything).Return("neon", nil)

	svc := NewService(store)
	theme, err := svc.GetTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, theme)
}

func TestSetTheme_RejectsUnknownTheme(t *testing.T) {
	store := new(MockThemeStore)
	svc := NewService(store)

	err := svc.SetTheme(context.Background(), "neon")

	assert.ErrorIs(t, err, ErrInvalidTheme)
	store.AssertNotCalled(t, "SetTheme", mock.Anything, mock.Anything)
}

func TestSetTheme_PersistsValidTheme(t *testing.T) {
	store := new(MockThemeStore)
	store.On("SetTheme", mock.Anything, ThemeLight).Return(nil).Once()

	svc := NewService(store)
	err := svc.SetTheme(context.Background(), ThemeLight)

	require.NoError(t, err)
	store.AssertExpectations(t)
}

package repository

import (
	"context"

	"gorm.io/gorm"
)

// themeKey is the theme preference's own storage key, independent of the app
// snapshot so a logout never resets the chosen theme.
const themeKey = "theme_preference"

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetTheme returns the stored preference, or "" when none has been saved.
func (r *PreferenceRepository) GetTheme(ctx context.Context) (string, error) {
	raw, err := getValue(ctx, r.db, themeKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *PreferenceRepository) SetTheme(ctx context.Context, theme string) error {
	return putValue(ctx, r.db, themeKey, []byte(theme))
}

package prefs

import "context"

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Service keeps the theme preference in its own storage row so it survives
// logout and full state resets.
type Service struct {
	store ThemeStore
}

func NewService(store ThemeStore) *Service {
	return &Service{store: store}
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeSystem
}

// GetTheme returns the saved preference, defaulting to system.
func (s *Service) GetTheme(ctx context.Context) (string, error) {
	theme, err := s.store.GetTheme(ctx)
	if err != nil {
		return "", err
	}
	if !validTheme(theme) {
		return ThemeSystem, nil
	}
	return theme, nil
}

func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if !validTheme(theme) {
		return ErrInvalidTheme
	}
	return s.store.SetTheme(ctx, theme)
}

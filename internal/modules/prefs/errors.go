package prefs

import "errors"

var ErrInvalidTheme = errors.New("invalid theme")

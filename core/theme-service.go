package core

import (
	"sync"

	consoleTheme "github.com/katib-dev/katib-console/widget/theme"
)

// ThemeService provides methods to fetch and manipulate the current
// application theme.
type ThemeService interface {
	Current() *consoleTheme.Theme
	SetDarkMode(bool)
}

// themeService implements ThemeService.
type themeService struct {
	sync.Mutex
	styles  consoleTheme.Styles
	current *consoleTheme.Theme
}

var _ ThemeService = &themeService{}

func newThemeService(dark bool, styles consoleTheme.Styles) ThemeService {
	return &themeService{
		styles:  styles,
		current: consoleTheme.New(dark, styles),
	}
}

// Current returns the current theme.
func (t *themeService) Current() *consoleTheme.Theme {
	t.Lock()
	defer t.Unlock()
	return t.current
}

// SetDarkMode replaces the current theme if its variant differs.
func (t *themeService) SetDarkMode(dark bool) {
	t.Lock()
	defer t.Unlock()
	if t.current.Dark == dark {
		return
	}
	t.current = consoleTheme.New(dark, t.styles)
}

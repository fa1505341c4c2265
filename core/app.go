package core

import (
	"fmt"

	gioapp "gioui.org/app"
	consoleTheme "github.com/katib-dev/katib-console/widget/theme"
)

// App bundles core application services into a single convenience type.
type App interface {
	Settings() SettingsService
	Banners() BannerService
	Haptic() HapticService
	Theme() ThemeService
}

// app bundles services together.
type app struct {
	SettingsService
	BannerService
	HapticService
	ThemeService
}

var _ App = &app{}

// NewApp constructs an App or fails with an error. This process will fail
// if any of the application services fail to initialize correctly. w may
// be nil, in which case haptic feedback is disabled.
func NewApp(w *gioapp.Window, stateDir, stylesPath string) (application App, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("failed constructing app: %w", err)
		}
	}()
	a := &app{}
	// Settings must be initialized first, as other services rely on derived
	// values from it
	if a.SettingsService, err = newSettingsService(stateDir); err != nil {
		return nil, err
	}
	styles, err := consoleTheme.LoadStyles(stylesPath)
	if err != nil {
		return nil, err
	}
	a.ThemeService = newThemeService(a.SettingsService.DarkMode(), styles)
	var invalidate func()
	if w != nil {
		invalidate = w.Invalidate
		a.HapticService = newHapticService(w)
	} else {
		a.HapticService = noopHaptics{}
	}
	a.BannerService = NewBannerService(invalidate)
	return a, nil
}

// Settings returns the app's settings service implementation.
func (a *app) Settings() SettingsService {
	return a.SettingsService
}

// Banners returns the app's banner service implementation.
func (a *app) Banners() BannerService {
	return a.BannerService
}

// Haptic returns the app's haptic service implementation.
func (a *app) Haptic() HapticService {
	return a.HapticService
}

// Theme returns the app's theme service implementation.
func (a *app) Theme() ThemeService {
	return a.ThemeService
}

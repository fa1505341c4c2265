package main

import (
	gioapp "gioui.org/app"
	"gioui.org/io/event"
	"github.com/katib-dev/katib-console/core"
)

// ProcessPlatformEvent handles events only delivered on this platform. It
// reports whether the event was consumed.
func ProcessPlatformEvent(app core.App, e event.Event) bool {
	switch e := e.(type) {
	case gioapp.ViewEvent:
		app.Haptic().UpdateAndroidViewRef(e.View)
		return true
	default:
		return false
	}
}

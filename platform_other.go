//go:build !android
// +build !android

package main

import (
	"gioui.org/io/event"
	"github.com/katib-dev/katib-console/core"
)

// ProcessPlatformEvent handles events only delivered on some platforms.
// There are none here.
func ProcessPlatformEvent(app core.App, e event.Event) bool {
	return false
}

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/component"
	"github.com/inkeliz/giohyperlink"
	"github.com/katib-dev/katib-console/core"
	"github.com/katib-dev/katib-console/icons"
	"github.com/katib-dev/katib-console/store"
	"github.com/pkg/profile"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

func main() {
	log.SetFlags(log.Flags() | log.Lshortfile)
	go func() {
		w := app.NewWindow(app.Title("Katib"))
		if err := eventLoop(w); err != nil {
			log.Fatalf("exiting due to error: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func eventLoop(w *app.Window) error {
	dataDir, err := app.DataDir()
	if err != nil {
		log.Printf("failed finding application data dir: %v", err)
	}
	dataDir = filepath.Join(dataDir, "katib-console")
	profiling := flag.Bool("profile", false, "write a CPU profile to the data directory")
	stylesPath := flag.String("styles", "", "YAML file overriding component styles")
	flag.StringVar(&dataDir, "data-dir", dataDir, "application state directory")
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dataDir)).Stop()
	}

	application, err := core.NewApp(w, dataDir, *stylesPath)
	if err != nil {
		log.Fatalf("Failed initializing application: %v", err)
	}

	pages := []Page{
		NewMonitorView(application, HPMonitorID, "HP Monitor",
			"Hyperparameter tuning experiments search for the parameters that optimize an objective metric.",
			icons.ExperimentIcon),
		NewMonitorView(application, NASMonitorID, "NAS Monitor",
			"Neural architecture search experiments search for the model structure that optimizes an objective metric.",
			icons.NASIcon),
		NewTemplatesView(application),
		NewSettingsView(application),
	}
	start := startPage(application.Settings(), pages)
	uiState := store.New(start, w.Invalidate)

	shell := NewShell(application, uiState, "Katib", "Hyperparameter Tuning")
	defer shell.Close()
	for _, p := range pages {
		shell.RegisterPage(p)
	}
	shell.AddLink(component.NavItem{
		Tag:  DocsID,
		Name: "Documentation",
		Icon: icons.DocsIcon,
	}, DocsURL, giohyperlink.Open)

	var ops op.Ops
	for {
		event := <-w.Events()
		giohyperlink.ListenEvents(event)
		if ProcessPlatformEvent(application, event) {
			continue
		}
		switch event := event.(type) {
		case system.DestroyEvent:
			return event.Err
		case *system.CommandEvent:
			if event.Type == system.CommandBack {
				shell.HandleBack(event)
			}
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, event)
			layout.Inset{
				Bottom: event.Insets.Bottom,
				Left:   event.Insets.Left,
				Right:  event.Insets.Right,
				Top:    event.Insets.Top,
			}.Layout(gtx, shell.Layout)
			event.Frame(gtx.Ops)
		}
	}
}

// startPage returns the page shown when the application last closed, or
// the first page if that one no longer exists.
func startPage(settings core.SettingsService, pages []Page) store.PageID {
	last := store.PageID(settings.LastPage())
	for _, p := range pages {
		if p.NavItem().Tag == last {
			return last
		}
	}
	first, _ := pages[0].NavItem().Tag.(store.PageID)
	return first
}

package core

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestSettingsPersistAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "console")
	s, err := newSettingsService(dir)
	if err != nil {
		t.Fatalf("constructing settings: %v", err)
	}
	if s.DarkMode() || s.LastPage() != "" {
		t.Fatalf("expected default settings")
	}
	s.SetDarkMode(true)
	s.SetLastPage("templates")
	if s.Namespace() != DefaultNamespace {
		t.Errorf("expected default namespace, got %q", s.Namespace())
	}
	s.SetNamespace("katib-e2e")
	if err := s.Persist(); err != nil {
		t.Fatalf("persisting: %v", err)
	}

	reloaded, err := newSettingsService(dir)
	if err != nil {
		t.Fatalf("reloading settings: %v", err)
	}
	if !reloaded.DarkMode() {
		t.Errorf("dark mode not persisted")
	}
	if reloaded.LastPage() != "templates" {
		t.Errorf("expected last page %q, got %q", "templates", reloaded.LastPage())
	}
	if reloaded.Namespace() != "katib-e2e" {
		t.Errorf("namespace not persisted, got %q", reloaded.Namespace())
	}
	if reloaded.DataPath() != dir {
		t.Errorf("unexpected data path %q", reloaded.DataPath())
	}
}

func TestSettingsPersistAsyncKeepsLatest(t *testing.T) {
	dir := t.TempDir()
	s, err := newSettingsService(dir)
	if err != nil {
		t.Fatalf("constructing settings: %v", err)
	}
	pages := []string{"hp-monitor", "nas-monitor", "trial-templates", "settings"}
	for i := 0; i < 50; i++ {
		s.SetLastPage(pages[i%len(pages)])
		s.SetDarkMode(i%2 == 0)
		s.PersistAsync(func(err error) {
			t.Errorf("unexpected save failure: %v", err)
		})
	}
	s.Wait()

	reloaded, err := newSettingsService(dir)
	if err != nil {
		t.Fatalf("reloading settings: %v", err)
	}
	if got, want := reloaded.LastPage(), pages[49%len(pages)]; got != want {
		t.Errorf("stale save won: expected last page %q, got %q", want, got)
	}
	if reloaded.DarkMode() {
		t.Errorf("stale save won: expected dark mode off")
	}
}

func TestSettingsPersistAsyncReportsFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := newSettingsService(filepath.Join(blocker, "console"))
	if err != nil {
		t.Fatalf("constructing settings: %v", err)
	}
	var mu sync.Mutex
	failures := 0
	s.PersistAsync(func(error) {
		mu.Lock()
		defer mu.Unlock()
		failures++
	})
	// A nil handler drops the error.
	s.PersistAsync(nil)
	s.Wait()
	if failures != 1 {
		t.Errorf("expected one reported failure, got %d", failures)
	}
}

func TestSettingsIgnoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := newSettingsService(dir)
	if err != nil {
		t.Fatalf("corrupt settings must fall back to defaults: %v", err)
	}
	if s.DarkMode() {
		t.Errorf("expected defaults")
	}
}

func TestBannerPriority(t *testing.T) {
	invalidations := 0
	b := NewBannerService(func() { invalidations++ })
	if b.Top() != nil {
		t.Fatalf("expected no banner")
	}
	info := &MessageBanner{Priority: Info, Text: "info"}
	failure := &MessageBanner{Priority: Error, Text: "error"}
	b.Add(info)
	b.Add(failure)
	if invalidations != 2 {
		t.Errorf("expected 2 invalidations, got %d", invalidations)
	}
	if b.Top() != failure {
		t.Fatalf("expected highest priority banner first")
	}
	failure.Cancel()
	if b.Top() != info {
		t.Fatalf("cancelled banner still on top")
	}
	info.Cancel()
	if b.Top() != nil {
		t.Fatalf("expected no banner after cancelling all")
	}
}

func TestBannerConcurrentAdd(t *testing.T) {
	b := NewBannerService(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(p Priority) {
			defer wg.Done()
			b.Add(&MessageBanner{Priority: p})
		}(Priority(i % 4))
	}
	wg.Wait()
	if top := b.Top(); top == nil || top.BannerPriority() != Error {
		t.Errorf("expected an error banner on top, got %v", top)
	}
}

func TestNewAppWithoutWindow(t *testing.T) {
	a, err := NewApp(nil, t.TempDir(), "")
	if err != nil {
		t.Fatalf("constructing app: %v", err)
	}
	a.Haptic().Buzz()
	if a.Theme().Current() == nil {
		t.Fatalf("no theme")
	}
	a.Theme().SetDarkMode(true)
	if !a.Theme().Current().Dark {
		t.Errorf("dark mode not applied to theme")
	}
	if _, err := NewApp(nil, t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing styles file")
	}
}

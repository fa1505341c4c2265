package core

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// SettingsService allows querying, updating, and saving settings.
type SettingsService interface {
	DarkMode() bool
	SetDarkMode(bool)
	LastPage() string
	SetLastPage(string)
	Namespace() string
	SetNamespace(string)
	DataPath() string
	Persist() error
	// PersistAsync saves in the background, reporting failure to onError
	// if it is non-nil.
	PersistAsync(onError func(error))
	// Wait blocks until every save started with PersistAsync has finished.
	Wait()
}

type Settings struct {
	DarkMode bool

	// the page displayed when the application last closed
	LastPage string

	// the Kubernetes namespace whose experiments are monitored. Empty
	// means DefaultNamespace.
	Namespace string
}

// DefaultNamespace is the namespace monitored until the user picks one.
const DefaultNamespace = "kubeflow"

type settingsService struct {
	sync.Mutex
	Settings
	dataDir string

	// writing is held from snapshot to file write so that saves land in
	// the order their snapshots were taken.
	writing sync.Mutex
	pending sync.WaitGroup
}

var _ SettingsService = &settingsService{}

func newSettingsService(stateDir string) (SettingsService, error) {
	s := &settingsService{
		dataDir: stateDir,
	}
	if err := s.Load(); err != nil {
		log.Printf("no loadable settings file found; defaults will be used: %v", err)
	}
	return s, nil
}

func (s *settingsService) Load() error {
	jsonSettings, err := os.ReadFile(s.SettingsFile())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	s.Lock()
	defer s.Unlock()
	if err = json.Unmarshal(jsonSettings, &s.Settings); err != nil {
		return fmt.Errorf("couldn't parse json settings: %w", err)
	}
	return nil
}

func (s *settingsService) DarkMode() bool {
	s.Lock()
	defer s.Unlock()
	return s.Settings.DarkMode
}

func (s *settingsService) SetDarkMode(enabled bool) {
	s.Lock()
	defer s.Unlock()
	s.Settings.DarkMode = enabled
}

func (s *settingsService) LastPage() string {
	s.Lock()
	defer s.Unlock()
	return s.Settings.LastPage
}

func (s *settingsService) SetLastPage(page string) {
	s.Lock()
	defer s.Unlock()
	s.Settings.LastPage = page
}

func (s *settingsService) Namespace() string {
	s.Lock()
	defer s.Unlock()
	if s.Settings.Namespace == "" {
		return DefaultNamespace
	}
	return s.Settings.Namespace
}

func (s *settingsService) SetNamespace(namespace string) {
	s.Lock()
	defer s.Unlock()
	s.Settings.Namespace = namespace
}

func (s *settingsService) DataPath() string {
	return s.dataDir
}

func (s *settingsService) SettingsFile() string {
	return filepath.Join(s.dataDir, "settings.json")
}

func (s *settingsService) Persist() error {
	s.writing.Lock()
	defer s.writing.Unlock()
	s.Lock()
	data, err := json.MarshalIndent(&s.Settings, "", "  ")
	s.Unlock()
	if err != nil {
		return fmt.Errorf("couldn't marshal settings as json: %w", err)
	}
	if err := os.MkdirAll(s.dataDir, 0770); err != nil {
		return fmt.Errorf("couldn't create settings directory: %w", err)
	}
	if err := os.WriteFile(s.SettingsFile(), data, 0660); err != nil {
		return fmt.Errorf("couldn't save settings file: %w", err)
	}
	return nil
}

func (s *settingsService) PersistAsync(onError func(error)) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.Persist(); err != nil && onError != nil {
			onError(err)
		}
	}()
}

func (s *settingsService) Wait() {
	s.pending.Wait()
}

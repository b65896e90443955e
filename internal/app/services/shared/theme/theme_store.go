package theme

import (
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/models"
	"fmt"
	"sync"
)

type themeStore struct {
	mu    sync.RWMutex
	theme models.Theme
}

// NewThemeStore returns the process-wide default theme holder, starting light.
func NewThemeStore() contracts.ThemeStore {
	return &themeStore{theme: models.ThemeLight}
}

// Configure sets the store default from a configured value. An unknown value
// leaves the current default in place.
func Configure(store contracts.ThemeStore, raw string) error {
	theme, ok := models.ParseTheme(raw)
	if !ok {
		return fmt.Errorf("unknown theme %q", raw)
	}
	store.Set(theme)
	return nil
}

func (s *themeStore) Get() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *themeStore) Set(theme models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

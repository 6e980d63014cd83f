package ui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_toggles(t *testing.T) {
	s := NewState()
	assert.Equal(t, Snapshot{SidebarOpen: true, Theme: ThemeLight}, s.Snapshot())

	assert.Equal(t, Snapshot{SidebarOpen: false, Theme: ThemeLight}, s.ToggleSidebar())
	assert.Equal(t, Snapshot{SidebarOpen: false, Theme: ThemeDark}, s.ToggleTheme())
	assert.Equal(t, Snapshot{SidebarOpen: true, Theme: ThemeLight}, func() Snapshot {
		s.ToggleSidebar()
		return s.ToggleTheme()
	}())
}

func TestState_concurrentToggles(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ToggleSidebar()
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	// an even number of toggles leaves the sidebar as it started
	assert.True(t, s.Snapshot().SidebarOpen)
}

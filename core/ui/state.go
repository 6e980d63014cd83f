// Package ui holds the application-wide presentation state shared by every page.
package ui

import "sync"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Snapshot is a copy of the state at one point in time.
type Snapshot struct {
	SidebarOpen bool  `json:"sidebarOpen"`
	Theme       Theme `json:"theme"`
}

// State is created once at startup and passed by reference to its consumers.
type State struct {
	mu          sync.RWMutex
	sidebarOpen bool
	theme       Theme
}

// NewState starts with the sidebar open and the light theme.
func NewState() *State {
	return &State{sidebarOpen: true, theme: ThemeLight}
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{SidebarOpen: s.sidebarOpen, Theme: s.theme}
}

func (s *State) ToggleSidebar() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
	return Snapshot{SidebarOpen: s.sidebarOpen, Theme: s.theme}
}

func (s *State) ToggleTheme() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return Snapshot{SidebarOpen: s.sidebarOpen, Theme: s.theme}
}

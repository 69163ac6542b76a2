// Package detail turns one catalog record into the tabbed documentation view
// shown in the overlay, and owns the overlay's open/closed and tab state.
package detail

import (
	"fmt"
	"strings"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

// Tab identifies one section of the overlay.
type Tab int

const (
	TabOverview Tab = iota
	TabEndpoints
	TabExamples
	TabErrors
)

var tabNames = [...]string{"overview", "endpoints", "examples", "errors"}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabEndpoints, TabExamples, TabErrors}
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabNames[t]
}

// Title is the capitalised label shown on the tab control.
func (t Tab) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether t names a real tab.
func (t Tab) Valid() bool {
	return t >= TabOverview && t <= TabErrors
}

// ParseTab resolves a tab by name.
func ParseTab(name string) (Tab, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tabNames {
		if n == name {
			return Tab(i), nil
		}
	}
	return TabOverview, fmt.Errorf("unknown tab %q", name)
}

// Overview is the first tab's content.
type Overview struct {
	Description string
	BaseURL     string
	AuthScheme  string
	AuthNote    string
	RateLimit   string
	Methods     []catalog.Method
	Notes       []string
}

// View is the structured documentation for one record.
type View struct {
	ID          string
	Name        string
	Version     string
	Category    string
	Owner       string
	Environment string
	Status      string
	Overview    Overview
	Endpoints   []catalog.Endpoint
	Examples    []catalog.Example
	Errors      []catalog.ErrorCode
}

package view

import (
	"fmt"
	"strconv"
	"strings"
)

type Tab int

const (
	TabDashboard Tab = iota
	TabLeads
	TabAnalytics
	TabSettings
)

var tabNames = [...]string{"dashboard", "leads", "analytics", "settings"}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabDashboard, TabLeads, TabAnalytics, TabSettings}
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "tab(" + strconv.Itoa(int(t)) + ")"
	}
	return tabNames[t]
}

// ParseTab accepts a tab name or its 1-based position.
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tabNames {
		if s == name || s == strconv.Itoa(i+1) {
			return Tab(i), nil
		}
	}
	return TabDashboard, fmt.Errorf("unknown tab %q", s)
}

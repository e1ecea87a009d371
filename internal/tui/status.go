package tui

import (
	"fmt"
)

// statusBaseline is the status bar text shown when no notification is active
func (a *App) statusBaseline() string {
	return fmt.Sprintf("Postbox | Press %s for help | Press %s to quit", a.Keys.Help, a.Keys.Quit)
}

// helpText lists the active key bindings for the help notification
func (a *App) helpText() string {
	k := a.Keys
	return fmt.Sprintf(
		"Enter open | Esc close | %s compose | %s reply | %s star | %s spam | %s refresh | %s logout | %s quit",
		k.Compose, k.Reply, k.Star, k.Spam, k.Refresh, k.Logout, k.Quit,
	)
}

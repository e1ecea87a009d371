package tui

import (
	"log"
	"os"
	"path/filepath"
)

// initLogger initializes file logger under ~/.config/postbox/postbox.log if possible
func (a *App) initLogger() {
	if a.logger != nil && a.logFile != nil {
		return
	}
	lf := a.Config.LogFile
	if lf == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		lf = filepath.Join(home, ".config", "postbox", "postbox.log")
	}
	if err := os.MkdirAll(filepath.Dir(lf), 0o755); err != nil {
		return
	}
	if f, err := os.OpenFile(lf, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		a.logFile = f
		a.logger = log.New(f, "[postbox] ", log.LstdFlags|log.Lmicroseconds)
	}
}

// closeLogger closes the log file if opened
func (a *App) closeLogger() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

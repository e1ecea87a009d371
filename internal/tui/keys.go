package tui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// keyMatches reports whether the pressed rune matches a configured binding.
// Bindings are single characters; anything longer never matches.
func keyMatches(event *tcell.EventKey, binding string) bool {
	if event.Key() != tcell.KeyRune || binding == "" {
		return false
	}
	return string(event.Rune()) == binding
}

// bindKeys installs the input captures for each view
func (a *App) bindKeys() {
	if list, ok := a.views["list"].(*tview.List); ok {
		list.SetInputCapture(a.handleListKey)
	}
	if text, ok := a.views["text"].(*tview.TextView); ok {
		text.SetInputCapture(a.handleTextKey)
	}
	if login, ok := a.views["login"].(*tview.TextView); ok {
		login.SetInputCapture(a.handleLoginKey)
	}
}

func (a *App) handleListKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEnter {
		a.openSelectedMessage()
		return nil
	}

	switch {
	case keyMatches(event, a.Keys.Compose):
		a.openComposePanel()
	case keyMatches(event, a.Keys.Reply):
		a.openReplyPanel()
	case keyMatches(event, a.Keys.Star):
		a.starSelected()
	case keyMatches(event, a.Keys.Spam):
		a.toggleSpamSelected()
	case keyMatches(event, a.Keys.Refresh):
		a.reloadInbox()
	case keyMatches(event, a.Keys.Logout):
		a.logout()
	case keyMatches(event, a.Keys.Help):
		go a.errorHandler.ShowInfo(a.ctx, a.helpText())
	case keyMatches(event, a.Keys.Quit):
		a.Stop()
	default:
		return event
	}
	return nil
}

func (a *App) handleTextKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		a.closeMessage()
		return nil
	}

	switch {
	case keyMatches(event, a.Keys.Reply):
		a.openReplyPanel()
	case keyMatches(event, a.Keys.Help):
		go a.errorHandler.ShowInfo(a.ctx, a.helpText())
	case keyMatches(event, a.Keys.Quit):
		a.Stop()
	default:
		return event
	}
	return nil
}

func (a *App) handleLoginKey(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case keyMatches(event, a.Keys.Refresh):
		a.retrySession()
	case keyMatches(event, a.Keys.Quit):
		a.Stop()
	default:
		return event
	}
	return nil
}

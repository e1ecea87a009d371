package tui

import (
	"github.com/averde/postbox/internal/api"
	"github.com/averde/postbox/internal/render"
	"github.com/averde/postbox/internal/services"
	"github.com/derailed/tview"
)

// refreshMessageList rebuilds the list view from the inbox snapshot. Must run
// on the UI thread.
func (a *App) refreshMessageList() {
	list, ok := a.views["list"].(*tview.List)
	if !ok {
		return
	}

	messages := a.inboxService.Messages()
	selected := list.GetCurrentItem()

	list.Clear()
	ids := make([]string, 0, len(messages))
	_, _, width, _ := list.GetInnerRect()
	for _, msg := range messages {
		list.AddItem(a.inboxRenderer.FormatRow(msg, width), "", 0, nil)
		ids = append(ids, msg.ID)
	}

	a.mu.Lock()
	a.ids = ids
	a.mu.Unlock()

	if len(messages) == 0 {
		list.AddItem("(Inbox is empty)", "", 0, nil)
		return
	}
	if selected >= list.GetItemCount() {
		selected = list.GetItemCount() - 1
	}
	if selected >= 0 {
		list.SetCurrentItem(selected)
	}
}

// selectedMessage returns the summary under the cursor, or nil when the list
// is empty
func (a *App) selectedMessage() *api.MessageSummary {
	list, ok := a.views["list"].(*tview.List)
	if !ok {
		return nil
	}
	idx := list.GetCurrentItem()

	a.mu.RLock()
	if idx < 0 || idx >= len(a.ids) {
		a.mu.RUnlock()
		return nil
	}
	id := a.ids[idx]
	a.mu.RUnlock()

	for _, msg := range a.inboxService.Messages() {
		if msg.ID == id {
			m := msg
			return &m
		}
	}
	return nil
}

// reloadInbox refetches the whole inbox in the background and replaces the
// list contents. A session that turns out to be invalid drops back to the
// login gate.
func (a *App) reloadInbox() {
	if a.IsInboxLoading() {
		return
	}
	a.SetInboxLoading(true)

	go func() {
		a.errorHandler.ShowProgress(a.ctx, "Loading inbox...")
		err := a.inboxService.Load(a.ctx)
		a.SetInboxLoading(false)
		a.errorHandler.ClearProgress()
		a.QueueUpdateDraw(func() {
			if err != nil {
				if !a.sessionService.IsAuthenticated() {
					a.showLoginPage("Session expired. Log in at " + a.sessionService.LoginURL() + " and press " + a.Keys.Refresh + ".")
					return
				}
				a.errorHandler.ShowError(a.ctx, "Could not load inbox")
				return
			}
			a.refreshMessageList()
		})
	}()
}

// retrySession re-runs the startup session check from the login gate
func (a *App) retrySession() {
	go func() {
		err := a.sessionService.Initialize(a.ctx)
		a.QueueUpdateDraw(func() {
			switch {
			case err != nil:
				a.showLoginPage("Could not reach the server. Log in at " + a.sessionService.LoginURL() + " and press " + a.Keys.Refresh + " to retry.")
			case !a.sessionService.IsAuthenticated():
				a.showLoginPage("Not logged in. Open " + a.sessionService.LoginURL() + " in a browser, then press " + a.Keys.Refresh + ".")
			default:
				a.showMainPage()
				a.refreshMessageList()
			}
		})
	}()
}

// openSelectedMessage fetches the full content of the message under the
// cursor and shows it in the detail pane
func (a *App) openSelectedMessage() {
	msg := a.selectedMessage()
	if msg == nil {
		return
	}
	a.SetCurrentMessageID(msg.ID)

	go func(id string) {
		detail, err := a.messageService.Open(a.ctx, id)
		if err != nil {
			a.errorHandler.HandleError(a.ctx, err, "Could not open message")
			return
		}
		if detail == nil {
			// Superseded by a newer selection
			return
		}
		a.QueueUpdateDraw(func() {
			a.renderMessageDetail(detail)
			a.SetFocus(a.views["text"])
			a.setFocusTarget("text")
		})
	}(msg.ID)
}

// renderMessageDetail fills the header and body panes. Must run on the UI
// thread.
func (a *App) renderMessageDetail(detail *api.MessageDetail) {
	if header, ok := a.views["header"].(*tview.TextView); ok {
		header.SetText(a.inboxRenderer.FormatDetailHeader(detail))
	}
	if text, ok := a.views["text"].(*tview.TextView); ok {
		body, _ := render.BodyText(detail.Body)
		text.SetText(body)
		text.ScrollToBeginning()
	}
}

// closeMessage clears the detail pane and returns focus to the list
func (a *App) closeMessage() {
	a.messageService.Close()
	if header, ok := a.views["header"].(*tview.TextView); ok {
		header.SetText("")
	}
	if text, ok := a.views["text"].(*tview.TextView); ok {
		text.SetText("")
	}
	a.SetFocus(a.views["list"])
	a.setFocusTarget("list")
}

// starSelected stars the message under the cursor and repaints its row once
// the backend confirmed
func (a *App) starSelected() {
	msg := a.selectedMessage()
	if msg == nil {
		return
	}
	if msg.Starred {
		go a.errorHandler.ShowInfo(a.ctx, "Message is already starred")
		return
	}

	go func(id string) {
		if err := a.flagService.Star(a.ctx, id); err != nil {
			a.errorHandler.HandleError(a.ctx, err, "Could not star message")
			return
		}
		a.QueueUpdateDraw(func() {
			a.refreshMessageList()
		})
		a.errorHandler.ShowSuccess(a.ctx, "Message starred")
	}(msg.ID)
}

// toggleSpamSelected flips the spam state of the message under the cursor,
// surfacing the backend's confirmation text
func (a *App) toggleSpamSelected() {
	msg := a.selectedMessage()
	if msg == nil {
		return
	}

	go func(id string, currentSpam bool) {
		confirmation, err := a.flagService.ToggleSpam(a.ctx, id, currentSpam)
		if err != nil {
			a.errorHandler.HandleError(a.ctx, err, "Could not update spam flag")
			return
		}
		a.QueueUpdateDraw(func() {
			a.refreshMessageList()
		})
		if confirmation == "" {
			confirmation = "Spam flag updated"
		}
		a.errorHandler.ShowSuccess(a.ctx, confirmation)
	}(msg.ID, msg.Spam)
}

// logout flips to the login gate immediately and fires the backend logout in
// the background
func (a *App) logout() {
	go a.sessionService.Logout(a.ctx)
	a.closeMessage()
	a.composerService.Cancel(services.SlotCompose)
	a.composerService.Cancel(services.SlotReply)
	a.showLoginPage("Logged out. Open " + a.sessionService.LoginURL() + " in a browser to log back in, then press " + a.Keys.Refresh + ".")
}

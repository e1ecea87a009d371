package tui

import (
	"github.com/averde/postbox/internal/services"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// pageName returns the page under which the slot's panel is registered
func pageName(slot services.DraftSlot) string {
	if slot == services.SlotReply {
		return "reply"
	}
	return "compose"
}

// openComposePanel opens the compose slot with a fresh draft
func (a *App) openComposePanel() {
	a.composerService.OpenCompose()
	a.showDraftPanel(services.SlotCompose, " Compose ")
}

// openReplyPanel opens the reply slot seeded from the message under the
// cursor. Without a selected message there is nothing to reply to.
func (a *App) openReplyPanel() {
	msg := a.selectedMessage()
	if msg == nil {
		go a.errorHandler.ShowInfo(a.ctx, "Select a message to reply to")
		return
	}
	a.composerService.OpenReply(msg.Sender)
	a.showDraftPanel(services.SlotReply, " Reply ")
}

// showDraftPanel builds the slot's form from its current draft and brings the
// panel page to the front. Each keystroke flows straight into the draft, so
// the panel can be rebuilt from service state at any time.
func (a *App) showDraftPanel(slot services.DraftSlot, title string) {
	theme := a.currentTheme
	draft := a.composerService.Draft(slot)

	form := tview.NewForm()
	form.SetFieldTextColor(theme.Body.FgColor.Color())
	form.SetLabelColor(theme.Frame.Title.FgColor.Color())
	if a.Config.UI.ShowBorders {
		form.SetBorder(true)
		form.SetBorderColor(theme.Frame.Border.FocusColor.Color())
	}
	if a.Config.UI.ShowTitles {
		form.SetTitle(title)
		form.SetTitleColor(theme.Frame.Title.FgColor.Color())
	}

	form.AddInputField("To", draft.Recipient, 0, nil, func(text string) {
		a.composerService.UpdateField(slot, services.DraftRecipient, text)
	})
	form.AddInputField("Subject", draft.Subject, 0, nil, func(text string) {
		a.composerService.UpdateField(slot, services.DraftSubject, text)
	})
	form.AddInputField("Body", draft.Body, 0, nil, func(text string) {
		a.composerService.UpdateField(slot, services.DraftBody, text)
	})

	form.AddButton("Send", func() {
		a.sendDraft(slot)
	})
	form.AddButton("Cancel", func() {
		a.cancelDraft(slot)
	})
	form.SetCancelFunc(func() {
		a.cancelDraft(slot)
	})
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			a.cancelDraft(slot)
			return nil
		}
		return event
	})

	page := pageName(slot)
	a.views[page] = form
	a.Pages.AddPage(page, modal(form, 72, 13), true, true)
	a.SetFocus(form)
}

// sendDraft submits the slot's draft. A backend rejection keeps the panel
// open with every field intact; success closes it.
func (a *App) sendDraft(slot services.DraftSlot) {
	go func() {
		err := a.composerService.Send(a.ctx, slot)
		if err != nil {
			if rejected, ok := services.IsSendRejected(err); ok {
				a.errorHandler.ShowWarning(a.ctx, "Send rejected: "+rejected.Reason)
			} else {
				a.errorHandler.HandleError(a.ctx, err, "Could not send message")
			}
			return
		}
		a.QueueUpdateDraw(func() {
			a.hideDraftPanel(slot)
		})
		a.errorHandler.ShowSuccess(a.ctx, "Message sent")
	}()
}

// cancelDraft discards the slot's draft and closes its panel
func (a *App) cancelDraft(slot services.DraftSlot) {
	a.composerService.Cancel(slot)
	a.hideDraftPanel(slot)
}

// hideDraftPanel removes the slot's page and restores list focus. Must run on
// the UI thread.
func (a *App) hideDraftPanel(slot services.DraftSlot) {
	page := pageName(slot)
	a.Pages.RemovePage(page)
	delete(a.views, page)
	a.SetFocus(a.views["list"])
	a.setFocusTarget("list")
}

// modal centers a primitive at a fixed size over the current page
func modal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

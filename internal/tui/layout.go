package tui

import (
	"github.com/derailed/tview"
)

// initViews builds the primitives and assembles the main and login pages
func (a *App) initViews() {
	theme := a.currentTheme

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(theme.Mail.NormalColor.Color())
	list.SetSelectedFocusOnly(false)
	if a.Config.UI.ShowBorders {
		list.SetBorder(true)
		list.SetBorderColor(theme.Frame.Border.FgColor.Color())
	}
	if a.Config.UI.ShowTitles {
		list.SetTitle(" Inbox ")
		list.SetTitleColor(theme.Frame.Title.FgColor.Color())
	}
	a.views["list"] = list

	header := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(false)
	header.SetTextColor(theme.Frame.Title.FgColor.Color())
	a.views["header"] = header

	text := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetWordWrap(true)
	text.SetTextColor(theme.Body.FgColor.Color())
	if a.Config.UI.ShowBorders {
		text.SetBorder(true)
		text.SetBorderColor(theme.Frame.Border.FgColor.Color())
	}
	if a.Config.UI.ShowTitles {
		text.SetTitle(" Message ")
		text.SetTitleColor(theme.Frame.Title.FgColor.Color())
	}
	a.views["text"] = text

	status := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(false)
	status.SetText(a.statusBaseline())
	status.SetTextColor(theme.Status.InfoColor.Color())
	a.views["status"] = status

	detail := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 4, 0, false).
		AddItem(text, 0, 1, false)

	content := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detail, 0, 2, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(status, 1, 0, false)
	a.views["main"] = main

	login := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetWordWrap(true).
		SetTextAlign(tview.AlignCenter)
	login.SetTextColor(theme.Body.FgColor.Color())
	if a.Config.UI.ShowBorders {
		login.SetBorder(true)
		login.SetBorderColor(theme.Frame.Border.FgColor.Color())
	}
	if a.Config.UI.ShowTitles {
		login.SetTitle(" Postbox ")
		login.SetTitleColor(theme.Frame.Title.FgColor.Color())
	}
	a.views["login"] = login

	a.Pages.AddPage("login", login, true, true)
	a.Pages.AddPage("main", main, true, false)
}

// showLoginPage switches to the login gate with the given prompt
func (a *App) showLoginPage(prompt string) {
	if login, ok := a.views["login"].(*tview.TextView); ok {
		login.SetText("\n\n" + prompt)
	}
	a.Pages.SwitchToPage("login")
	a.SetFocus(a.views["login"])
}

// showMainPage switches to the inbox layout
func (a *App) showMainPage() {
	a.Pages.SwitchToPage("main")
	a.SetFocus(a.views["list"])
	a.setFocusTarget("list")
}

func (a *App) setFocusTarget(target string) {
	a.mu.Lock()
	a.currentFocus = target
	a.mu.Unlock()
}

func (a *App) focusTarget() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.currentFocus
}

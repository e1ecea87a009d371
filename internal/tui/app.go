package tui

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/averde/postbox/internal/api"
	"github.com/averde/postbox/internal/config"
	"github.com/averde/postbox/internal/render"
	"github.com/averde/postbox/internal/services"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// App encapsulates the terminal UI and the backend client
type App struct {
	*tview.Application
	Pages  *tview.Pages
	Config *config.Config
	Client *api.Client
	Keys   config.KeyBindings

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	views map[string]tview.Primitive

	// Inbox renderer
	inboxRenderer *render.InboxRenderer

	// State management
	ids              []string // message IDs aligned with list rows
	currentMessageID string
	currentFocus     string // "list" or "text"
	inboxLoading     bool

	// Debug logging
	logger  *log.Logger
	logFile *os.File

	// Services
	repository      services.MessageRepository
	sessionService  services.SessionService
	inboxService    services.InboxService
	messageService  services.MessageService
	flagService     services.FlagService
	composerService services.ComposerService

	currentTheme *config.ColorsConfig // Current theme cache for helper functions
	errorHandler *ErrorHandler
}

// NewApp creates a new TUI application wired to the given backend client
func NewApp(client *api.Client, cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Application:   tview.NewApplication(),
		Config:        cfg,
		Client:        client,
		Keys:          cfg.Keys,
		ctx:           ctx,
		cancel:        cancel,
		views:         make(map[string]tview.Primitive),
		inboxRenderer: render.NewInboxRenderer(),
		currentFocus:  "list",
	}

	// Initialize file logger (logging.go)
	app.initLogger()

	// Initialize pages
	app.Pages = tview.NewPages()

	app.loadTheme()
	app.initViews()
	app.initServices()
	app.initErrorHandler()
	app.bindKeys()

	return app
}

// initServices builds the service layer over the backend client. Session and
// inbox reference each other, so both get built first and cross-wired with
// setters afterwards.
func (a *App) initServices() {
	repo := services.NewMessageRepository(a.Client)

	sessionService := services.NewSessionService(repo, a.Client.LoginURL())
	inboxService := services.NewInboxService(repo)
	sessionService.SetInboxService(inboxService)
	inboxService.SetSessionService(sessionService)

	messageService := services.NewMessageService(repo)
	flagService := services.NewFlagService(repo, inboxService)
	composerService := services.NewComposerService(repo)

	if a.logger != nil {
		sessionService.SetLogger(a.logger)
		inboxService.SetLogger(a.logger)
		messageService.SetLogger(a.logger)
		flagService.SetLogger(a.logger)
		composerService.SetLogger(a.logger)
	}

	a.repository = repo
	a.sessionService = sessionService
	a.inboxService = inboxService
	a.messageService = messageService
	a.flagService = flagService
	a.composerService = composerService
}

// initErrorHandler sets up centralized error handling for user feedback
func (a *App) initErrorHandler() {
	statusView, _ := a.views["status"].(*tview.TextView)
	a.errorHandler = NewErrorHandler(a.Application, a, statusView, a.logger)
}

// loadTheme resolves the configured theme, falling back to the built-in
// defaults when the file is missing or malformed
func (a *App) loadTheme() {
	a.currentTheme = config.DefaultColorsConfig()

	name := a.Config.UI.CurrentTheme
	if name == "" {
		return
	}

	themesDir := a.Config.UI.CustomThemeDir
	if themesDir == "" {
		themesDir = config.DefaultThemesDir()
	}
	loader := config.NewThemeLoader(themesDir)
	if theme, err := loader.LoadThemeFromFile(name + ".yaml"); err == nil {
		a.currentTheme = theme
	} else if a.logger != nil {
		a.logger.Printf("theme %q not loaded, using defaults: %v", name, err)
	}
}

// getStatusColor returns the theme color for a status level
func (a *App) getStatusColor(level string) tcell.Color {
	switch level {
	case "warning":
		return a.currentTheme.Status.WarningColor.Color()
	case "error":
		return a.currentTheme.Status.ErrorColor.Color()
	case "success":
		return a.currentTheme.Status.SuccessColor.Color()
	default:
		return a.currentTheme.Status.InfoColor.Color()
	}
}

// GetErrorHandler returns the app's error handler
func (a *App) GetErrorHandler() *ErrorHandler {
	return a.errorHandler
}

// GetCurrentMessageID returns the message under the cursor
func (a *App) GetCurrentMessageID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.currentMessageID
}

// SetCurrentMessageID updates the message under the cursor
func (a *App) SetCurrentMessageID(messageID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentMessageID = messageID
}

// IsInboxLoading reports whether an inbox fetch is in flight
func (a *App) IsInboxLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inboxLoading
}

// SetInboxLoading marks an inbox fetch as in flight
func (a *App) SetInboxLoading(loading bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inboxLoading = loading
}

// Run starts the session check and then the terminal event loop. The login
// page stays up until the backend confirms credentials.
func (a *App) Run() error {
	a.SetRoot(a.Pages, true)
	a.showLoginPage("Checking session...")

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

	defer a.closeLogger()
	return a.Application.Run()
}

// Stop tears down background work and exits the event loop
func (a *App) Stop() {
	a.cancel()
	a.Application.Stop()
}

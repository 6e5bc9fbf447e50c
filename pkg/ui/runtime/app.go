package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/odvcencio/tilemux/pkg/ui/backend"
	"github.com/odvcencio/tilemux/pkg/ui/theme"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands the screen did not consume.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Theme          *theme.Theme
	Logger         *slog.Logger
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
}

// App runs a widget tree against a terminal backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	theme          *theme.Theme
	logger         *slog.Logger
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message

	running  atomic.Bool
	dirty    bool
	renderMu sync.Mutex
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	update := cfg.Update
	if update == nil {
		update = DefaultUpdate
	}
	return &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		theme:          cfg.Theme,
		logger:         logger,
		update:         update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
	}
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// Post sends a message to the event loop. Messages are dropped when the
// queue is full.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
		a.logger.Debug("message dropped", "type", fmt.Sprintf("%T", msg))
	}
}

// Stop ends the event loop after the current message.
func (a *App) Stop() {
	a.running.Store(false)
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.screen = NewScreen(w, h, a.theme)
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}
	a.logger.Info("app started", "width", w, "height", h)

	a.running.Store(true)
	a.dirty = true
	go a.pollEvents()

	for a.running.Load() {
		if a.dirty {
			a.render()
			a.dirty = false
		}
		select {
		case <-ctx.Done():
			a.running.Store(false)
		case msg := <-a.messages:
			if a.update(a, msg) {
				a.dirty = true
			}
		}
	}

	a.logger.Info("app stopped")
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// DefaultUpdate handles resize messages and routes everything else
// through the screen.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case CallMsg:
		return m.Fn != nil && m.Fn()
	}
	result := app.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if app.HandleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

// HandleCommand applies an app-level command.
func (a *App) HandleCommand(cmd Command) bool {
	switch cmd.(type) {
	case Quit:
		a.Stop()
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
			a.backend.Sync()
		}
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		if msg := FromEvent(ev); msg != nil {
			a.Post(msg)
		}
	}
}

func (a *App) render() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	a.screen.Render()
	Flush(a.screen.Buffer(), a.backend)
}

// Flush writes dirty cells to the backend and shows them.
func Flush(buf *Buffer, be backend.Backend) {
	buf.ForEachDirtyCell(func(x, y int, cell Cell) {
		if cell.Continuation() {
			return
		}
		be.SetContent(x, y, cell.Rune, nil, cell.Style)
	})
	buf.ClearDirty()
	be.Show()
}

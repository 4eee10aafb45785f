package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/odvcencio/clickedit/pkg/ui/backend"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// CommandHandler handles commands that were not consumed by the screen.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	FocusScope     *FocusScope // optional; widgets pre-registered here stay focusable
	CommandHandler CommandHandler
	MessageBuffer  int
}

// App runs a widget tree against a terminal backend.
// Messages are processed one at a time on the event loop goroutine;
// widget code never runs concurrently with itself.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	focusScope     *FocusScope
	commandHandler CommandHandler
	messages       chan Message
	running        bool
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	return &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		focusScope:     cfg.FocusScope,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
	}
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// Post sends a message to the event loop.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.screen = NewScreen(w, h)
	a.screen.UseFocusScope(a.focusScope)
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}

	a.running = true
	go a.pollEvents()

	a.render()
	for a.running {
		select {
		case <-ctx.Done():
			a.running = false
		case msg := <-a.messages:
			a.dispatch(msg)
			a.render()
		}
	}

	return ctx.Err()
}

func (a *App) dispatch(msg Message) {
	if resize, ok := msg.(ResizeMsg); ok {
		a.screen.Resize(resize.Width, resize.Height)
		return
	}

	// Ctrl+C always quits, regardless of what holds focus.
	if key, ok := msg.(KeyMsg); ok && key.Key == terminal.KeyCtrlC {
		a.running = false
		return
	}

	result := a.screen.HandleMessage(msg)
	for _, cmd := range result.Commands {
		a.handleCommand(cmd)
	}
}

func (a *App) handleCommand(cmd Command) {
	switch cmd.(type) {
	case Quit:
		a.running = false
	case Refresh:
		a.screen.Buffer().MarkAllDirty()
	default:
		if a.commandHandler != nil {
			a.commandHandler(cmd)
		}
	}
}

// pollEvents forwards backend events to the message channel. It exits
// when the backend is finalized and PollEvent returns nil.
func (a *App) pollEvents() {
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.MouseEvent:
			a.Post(MouseMsg{
				X:      e.X,
				Y:      e.Y,
				Button: e.Button,
				Action: e.Action,
				Alt:    e.Alt,
				Ctrl:   e.Ctrl,
				Shift:  e.Shift,
			})
		case terminal.FocusEvent:
			a.Post(WindowFocusMsg{Focused: e.Focused})
		}
	}
}

func (a *App) render() {
	if a.screen == nil {
		return
	}

	a.screen.Render()
	buf := a.screen.Buffer()
	if buf.IsDirty() {
		buf.ForEachDirtyCell(func(x, y int, cell Cell) {
			if cell.Rune == 0 {
				return // continuation of a wide rune
			}
			a.backend.SetContent(x, y, cell.Rune, nil, cell.Style)
		})
		buf.ClearDirty()
	}
	a.backend.Show()
}

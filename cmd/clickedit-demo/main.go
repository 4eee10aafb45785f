// Command clickedit-demo shows a small form of click-to-edit controls:
// click a value to edit it, click elsewhere (or press Enter) to commit,
// Ctrl+C to quit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/backend/tcell"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "clickedit-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	be, err := tcell.New()
	if err != nil {
		return fmt.Errorf("create backend: %w", err)
	}

	scope := runtime.NewFocusScope()
	form := widgets.NewForm()
	form.SetGap(1)

	name, err := widgets.NewText(scope, clickedit.TextConfig{
		Initial: "Blorka",
		Label:   "Name: ",
		Unit:    " Sr.",
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	minimum, maximum := 0, 100
	temp, err := widgets.NewInteger(scope, clickedit.IntegerConfig{
		Initial: 23,
		Label:   "Temperature: ",
		Unit:    " C",
		Min:     &minimum,
		Max:     &maximum,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	onTime, err := widgets.NewTime(scope, clickedit.TimeConfig{
		Initial: clickedit.TimeOfDay{Hour: 1},
		Label:   "On Time: ",
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	level, err := widgets.NewChoice(scope, clickedit.ChoiceConfig{
		Options: []string{"Low", "Med", "High"},
		Initial: "Med",
		Label:   "Level: ",
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	form.Add(name)
	form.Add(temp)
	form.Add(onTime)
	form.Add(level)

	app := runtime.NewApp(runtime.AppConfig{
		Backend:    be,
		Root:       form,
		FocusScope: scope,
	})
	if err := app.Run(context.Background()); err != nil {
		return err
	}

	fmt.Printf("name=%q temperature=%d time=%s level=%q\n",
		name.Control().Value().Text(),
		temp.Control().Value().Int(),
		onTime.Control().Value().Time(),
		level.Control().Value().Choice())
	return nil
}

// newLogger returns a JSON logger writing to $CLICKEDIT_LOG, or nil
// when unset (controls skip logging entirely).
func newLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("CLICKEDIT_LOG")
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

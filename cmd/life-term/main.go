package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/life"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write diagnostics to this file instead of discarding them")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	// Size the grid to the terminal unless the flags already chose one.
	params := cfg.FactoryConfig()
	cols, rows := screen.Size()
	for k, v := range term.FitGrid(cols, rows) {
		if _, set := params[k]; !set {
			params[k] = v
		}
	}
	sim, err := factory(params)
	if err != nil {
		screen.Fini()
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	if l, ok := sim.(interface{ SetLogger(*log.Logger) }); ok {
		l.SetLogger(logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.NewHost(screen, sim, logger).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Atomic-Germ/snes9xGC/internal/adapter"
	"github.com/Atomic-Germ/snes9xGC/internal/config"
	"github.com/Atomic-Germ/snes9xGC/internal/hub"
	"github.com/Atomic-Germ/snes9xGC/internal/input"
	"github.com/Atomic-Germ/snes9xGC/internal/mapping"
	"github.com/Atomic-Germ/snes9xGC/internal/server"
	"github.com/Atomic-Germ/snes9xGC/internal/tray"
)

// Cross-platform signal handling: os.Interrupt covers Ctrl+C on
// Windows and SIGINT on Unix.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Mapping matrix: canonical defaults, then the user's persisted
	// remaps on top.
	registry := mapping.NewRegistry()
	if n := cfg.ApplyRemaps(registry); n > 0 {
		log.Printf("Applied %d user remaps", n)
	}

	bridge, err := adapter.OpenBridge()
	if err != nil {
		log.Fatalf("Joystick bridge: %v", err)
	}
	defer bridge.Close()
	adapters := bridge.Adapters()

	opts, err := cfg.ReaderOptions()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	opts.Pump = bridge.Pump
	reader := input.NewReader(registry, adapters, opts)

	h := hub.NewHub()
	go h.Run()

	broadcaster := hub.NewBroadcaster(h, reader.Changes(), reader.Events())
	go broadcaster.Run()

	frontendFS := getFrontendFS()
	srv := server.New(h, broadcaster, adapters, frontendFS, cfg.Listen)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	log.Printf("snes9xGC input bridge started: http://localhost%s", cfg.Listen)

	shutdownRequested := make(chan struct{})
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New("http://localhost"+cfg.Listen, func() {
				close(shutdownRequested)
			})
			t.Run(tray.GetIcon())
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// The poll loop handles the joystick bus; keep it on one OS
	// thread for SDL's sake.
	readerDone := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		reader.Run(ctx)
		close(readerDone)
	}()

	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	<-readerDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("snes9xGC input bridge stopped")
}

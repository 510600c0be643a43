package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/tabstrip/internal/app"
	"github.com/atomicstack/tabstrip/internal/config"
	"github.com/atomicstack/tabstrip/internal/logging"
	"github.com/atomicstack/tabstrip/internal/logging/events"
)

var errNotTerminal = errors.New("not a terminal")

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	screen, found := detectTerminal(standardDescriptors(), terminalSize)
	events.App.Start(startupTracePayload(runtimeCfg, screen, found))

	if err := app.Run(seedLayout(runtimeCfg.App, screen, found)); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminal is the screen size found on one of the standard descriptors.
type terminal struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptor struct {
	name string
	fd   int
}

type sizeFunc func(fd int) (width, height int, err error)

// standardDescriptors lists stdout first: it is where the browser draws.
func standardDescriptors() []descriptor {
	return []descriptor{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

func terminalSize(fd int) (int, int, error) {
	if fd < 0 || !term.IsTerminal(fd) {
		return 0, 0, errNotTerminal
	}
	return term.GetSize(fd)
}

// detectTerminal returns the first descriptor reporting a usable size.
func detectTerminal(fds []descriptor, size sizeFunc) (terminal, bool) {
	for _, d := range fds {
		width, height, err := size(d.fd)
		if err != nil || width <= 0 {
			continue
		}
		return terminal{Source: d.name, Width: width, Height: height}, true
	}
	return terminal{}, false
}

// seedLayout lets the first frame use the real screen size. A configured
// width stays fixed; a configured height is replaced on the first resize
// anyway, so it only wins when set.
func seedLayout(cfg app.Config, screen terminal, found bool) app.Config {
	if !found {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = screen.Width
	}
	if cfg.Height == 0 {
		cfg.Height = screen.Height
	}
	return cfg
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, screen terminal, found bool) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if found {
		payload["terminal"] = screen
	}
	return payload
}

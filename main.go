// Package main provides the entry point for VPN Switcher.
// VPN Switcher is a fast fuzzy-select switcher for tunnel profiles managed
// by NetworkManager. It presents the profiles grouped by exit group, keeps
// a short recency log, and guarantees that a newly picked profile is up
// before any previously active one is brought down.
//
// Features:
//   - One-keystroke toggle between off and the last used profile
//   - Built-in terminal fuzzy menu, or fuzzel/rofi/dmenu on the desktop
//   - Bounded, duplicate-free history of recent selections
//   - Desktop notifications for connect, disconnect, and failures
//
// Usage:
//
//	vpn-switcher [options]
//
// Environment:
//
//	The application requires NetworkManager (nmcli) to be installed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/yllada/vpn-switcher/cli"
	"github.com/yllada/vpn-switcher/common"
	"github.com/yllada/vpn-switcher/config"
	"github.com/yllada/vpn-switcher/history"
	"github.com/yllada/vpn-switcher/menu"
	"github.com/yllada/vpn-switcher/notify"
	"github.com/yllada/vpn-switcher/vpn"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// Non-interactive actions
	listProfiles = flag.Bool("list", false, "List all tunnel profiles")
	showStatus   = flag.Bool("status", false, "Show active tunnel profiles")
	toggleVPN    = flag.Bool("toggle", false, "Disable the VPN, or reconnect the last profile")
	disableAll   = flag.Bool("disable-all", false, "Bring all active tunnel profiles down")

	// Configuration overrides
	menuBackend    = flag.String("menu", "", "Menu backend: auto, tui, fuzzel, rofi, dmenu")
	menuTheme      = flag.String("theme", "", "Menu theme: auto, light, dark")
	historyFile    = flag.String("history-file", "", "Override the recency log location")
	historySize    = flag.Int("history-size", 0, "Bound of the recency log")
	notifyDuration = flag.Int("notify-duration", 0, "Notification duration in ms (negative disables)")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("VPN Switcher v%s\n", appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()
	log := common.GetLogger()
	log.Debug("Logging to %s", common.GetLogDir())

	cfg, err := config.Load()
	if err != nil {
		log.Warn("Could not load configuration, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	applyFlagOverrides(cfg)

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel, log)

	// Verify NetworkManager installation
	if !vpn.Available() {
		log.Error("nmcli is not installed on the system")
		fmt.Fprintln(os.Stderr, "Error: nmcli (NetworkManager) is not installed on the system.")
		os.Exit(1)
	}

	app := buildApp(cfg, log)

	// Check if context is already cancelled before proceeding
	select {
	case <-ctx.Done():
		log.Info("Operation cancelled before execution")
		return
	default:
	}

	var runErr error
	switch {
	case *listProfiles:
		runErr = app.cli.List()
	case *showStatus:
		runErr = app.cli.Status()
	case *toggleVPN:
		runErr = app.cli.Toggle()
	case *disableAll:
		runErr = app.cli.DisableAll()
	default:
		runErr = runMenu(app, cfg, log)
	}

	if runErr != nil {
		log.Error("%v", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// app bundles the wired components for one invocation.
type app struct {
	conns    vpn.Connections
	switcher *vpn.Switcher
	recent   *history.Store
	names    menu.Names
	cli      *cli.CLI
}

// buildApp wires the connection manager adapter, history, notifier, and
// switcher from the effective configuration.
func buildApp(cfg *config.Config, log common.Logger) *app {
	conns := vpn.NewNMCli(time.Duration(cfg.CommandTimeoutSec)*time.Second, log)

	historyPath := cfg.HistoryFile
	if historyPath == "" {
		if p, err := history.DefaultPath(); err == nil {
			historyPath = p
		} else {
			log.Warn("Could not resolve history location: %v", err)
		}
	}
	recent := history.New(historyPath, cfg.HistorySize)

	var notifier common.Notifier
	if cfg.ShowNotifications {
		notifier = notify.New(time.Duration(cfg.NotifyDurationMS)*time.Millisecond, log)
	}

	switcher := vpn.NewSwitcher(conns, recent, log, notifier)
	names := loadGroupNames(log)

	return &app{
		conns:    conns,
		switcher: switcher,
		recent:   recent,
		names:    names,
		cli:      cli.New(conns, switcher, names),
	}
}

// runMenu runs the interactive selection flow with the configured presenter.
func runMenu(a *app, cfg *config.Config, log common.Logger) error {
	present, err := buildPresenter(cfg, log)
	if err != nil {
		return err
	}

	flow := &menu.Flow{
		Conns:   a.conns,
		Switch:  a.switcher,
		Recent:  a.recent,
		Present: present,
		Names:   a.names,
		Log:     log,
	}
	return flow.Run()
}

// buildPresenter selects the menu backend. "auto" uses the built-in TUI on
// an interactive terminal and otherwise the first desktop launcher found.
func buildPresenter(cfg *config.Config, log common.Logger) (menu.Presenter, error) {
	switch cfg.Menu {
	case common.MenuTUI:
		return menu.NewTUI(cfg.Theme), nil
	case common.MenuFuzzel, common.MenuRofi, common.MenuDmenu:
		return menu.NewLauncher(cfg.Menu, cfg.Theme, log)
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return menu.NewTUI(cfg.Theme), nil
		}
		return menu.FirstAvailable(cfg.Theme, log)
	}
}

// loadGroupNames loads the group display-name asset. A missing or broken
// asset degrades to raw group codes, it never fails the run.
func loadGroupNames(log common.Logger) menu.Names {
	path, err := config.DefaultGroupsPath()
	if err != nil {
		log.Debug("Group names unavailable: %v", err)
		return nil
	}
	names, err := config.LoadGroupNames(path)
	if err != nil {
		log.Debug("Group names unavailable: %v", err)
		return nil
	}
	return menu.Names(names)
}

// applyFlagOverrides copies explicitly set command-line flags over the
// loaded configuration for this run only.
func applyFlagOverrides(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "menu":
			cfg.Menu = *menuBackend
		case "theme":
			cfg.Theme = *menuTheme
		case "history-file":
			cfg.HistoryFile = *historyFile
		case "history-size":
			cfg.HistorySize = *historySize
		case "notify-duration":
			cfg.NotifyDurationMS = *notifyDuration
		}
	})
	cfg.Validate()
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
func setupSignalHandler(cancel context.CancelFunc, log common.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("Received signal %v, shutting down", sig)
		cancel()
	}()
}

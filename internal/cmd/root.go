package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"wcamp/internal/config"
	"wcamp/internal/logging"
	"wcamp/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the wcamp TUI (default)" default:"1"`
	Events   EventsCmd   `cmd:"events" help:"Browse and select WordCamps"`
	Sessions SessionsCmd `cmd:"sessions" help:"List the selected event's sessions"`
	Speakers SpeakersCmd `cmd:"speakers" help:"Browse the selected event's speakers"`
	Sponsors SponsorsCmd `cmd:"sponsors" help:"Browse the selected event's sponsors"`
	Schedule ScheduleCmd `cmd:"schedule" help:"Manage your personal schedule"`
	Contact  ContactCmd  `cmd:"contact" help:"Manage your contact card"`
	Remind   RemindCmd   `cmd:"remind" help:"Run the reminder daemon" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("WCAMP_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("WCAMP_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit the debug settings and append to the same
	// log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("WCAMP_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("WCAMP_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("WCAMP_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the storage
	// layer's logger bridge has somewhere to write
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct{}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting wcamp TUI")

	model := ui.NewModel(
		cli.Container.EventService,
		cli.Container.ProgramService,
		cli.Container.ScheduleService,
		cli.Container.ContactService,
		cli.Container.Clock,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI exited with error", "error", err)
		return err
	}
	return nil
}

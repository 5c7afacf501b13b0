package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
)

// ScheduleCmd manages the personal schedule
type ScheduleCmd struct {
	List   ScheduleListCmd   `cmd:"list" help:"List your scheduled sessions" default:"1"`
	Add    ScheduleAddCmd    `cmd:"add" help:"Add a session to your schedule"`
	Del    ScheduleDelCmd    `cmd:"del" help:"Remove a session from your schedule"`
	Clear  ScheduleClearCmd  `cmd:"clear" help:"Clear your schedule for the selected event"`
	Export ScheduleExportCmd `cmd:"export" help:"Export your schedule as iCalendar"`
}

// ScheduleListCmd lists scheduled sessions
type ScheduleListCmd struct{}

// Run executes the schedule list command
func (s *ScheduleListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	program, err := cli.Container.ProgramService.Load(ctx)
	if err != nil {
		return err
	}

	entries, err := cli.Container.ScheduleService.Entries(ctx, program.Event.ID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Nothing scheduled yet; use 'wcamp schedule add <session-id>'")
		return nil
	}

	for _, entry := range entries {
		session, err := program.SessionByID(entry.SessionID)
		if err != nil {
			// Stale entry, the session dropped out of the program
			fmt.Printf("  %-8d %s (no longer in the program)\n", entry.SessionID, entry.Title)
			continue
		}
		view := program.StartTime(*session)
		reminder := ""
		if entry.ReminderID != "" && entry.NotifiedAt == nil {
			reminder = "  ⏰"
		}
		fmt.Printf("  %-8d %s  %s  %s%s\n",
			session.ID, domain.LongDate(view.LocalDate()), view.LocalTime,
			session.Title.Rendered, reminder)
	}
	return nil
}

// ScheduleAddCmd adds a session
type ScheduleAddCmd struct {
	SessionID int `arg:"" help:"Session ID from 'wcamp sessions'"`
}

// Run executes the schedule add command
func (s *ScheduleAddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	program, err := cli.Container.ProgramService.Load(ctx)
	if err != nil {
		return err
	}

	scheduled, err := cli.Container.ScheduleService.IsScheduled(ctx, program.Event.ID, s.SessionID)
	if err != nil {
		return err
	}
	if scheduled {
		fmt.Println("Already on your schedule")
		return nil
	}

	if _, err := cli.Container.ScheduleService.Toggle(ctx, program, s.SessionID); err != nil {
		if errors.Is(err, domain.ErrNotSchedulable) {
			return fmt.Errorf("session %d is a break or other non-session entry", s.SessionID)
		}
		return err
	}

	fmt.Println("Added to your schedule")
	return nil
}

// ScheduleDelCmd removes a session
type ScheduleDelCmd struct {
	SessionID int `arg:"" help:"Session ID to remove"`
}

// Run executes the schedule del command
func (s *ScheduleDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	program, err := cli.Container.ProgramService.Load(ctx)
	if err != nil {
		return err
	}

	scheduled, err := cli.Container.ScheduleService.IsScheduled(ctx, program.Event.ID, s.SessionID)
	if err != nil {
		return err
	}
	if !scheduled {
		fmt.Println("Not on your schedule")
		return nil
	}

	if _, err := cli.Container.ScheduleService.Toggle(ctx, program, s.SessionID); err != nil {
		return err
	}
	fmt.Println("Removed from your schedule")
	return nil
}

// ScheduleClearCmd clears the schedule
type ScheduleClearCmd struct {
	Force bool `help:"Skip confirmation" short:"f"`
}

// Run executes the schedule clear command
func (s *ScheduleClearCmd) Run(cli *CLI) error {
	ctx := context.Background()
	event, err := cli.Container.EventService.Selected(ctx)
	if err != nil {
		return err
	}

	if !s.Force {
		fmt.Printf("Clear your entire schedule for %s? (y/N): ", event.Title.Rendered)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.ScheduleService.Clear(ctx, event.ID); err != nil {
		return err
	}
	logging.Logger.Info("Schedule cleared", "event", event.ID)
	fmt.Println("Schedule cleared")
	return nil
}

// ScheduleExportCmd exports the schedule as iCalendar
type ScheduleExportCmd struct {
	Output string `help:"Write to a file instead of stdout" short:"o"`
}

// Run executes the schedule export command
func (s *ScheduleExportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	program, err := cli.Container.ProgramService.Load(ctx)
	if err != nil {
		return err
	}

	ical, err := cli.Container.ScheduleService.ExportICS(ctx, program)
	if err != nil {
		return err
	}

	if s.Output == "" {
		fmt.Print(ical)
		return nil
	}
	if err := os.WriteFile(s.Output, []byte(ical), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", s.Output)
	return nil
}

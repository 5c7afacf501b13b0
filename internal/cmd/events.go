package cmd

import (
	"context"
	"fmt"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/services"
)

// EventsCmd manages WordCamp selection
type EventsCmd struct {
	List   EventsListCmd   `cmd:"list" help:"List upcoming WordCamps" default:"1"`
	Select EventsSelectCmd `cmd:"select" help:"Select a WordCamp by ID"`
	Show   EventsShowCmd   `cmd:"show" help:"Show the selected WordCamp"`
	Clear  EventsClearCmd  `cmd:"clear" help:"Forget the selected WordCamp"`
}

// EventsListCmd lists upcoming events
type EventsListCmd struct{}

// Run executes the events list command
func (e *EventsListCmd) Run(cli *CLI) error {
	events, err := cli.Container.EventService.Upcoming(context.Background())
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No upcoming WordCamps found")
		return nil
	}

	for _, event := range events {
		dates := domain.FormatEventDate(event.StartDate)
		if end := domain.FormatEventDate(event.EndDate); end != "" && end != dates {
			dates += " - " + end
		}
		fmt.Printf("%-8d %-45s %-25s %s\n", event.ID, event.Title.Rendered, dates, event.Country)
	}
	return nil
}

// EventsSelectCmd selects an event
type EventsSelectCmd struct {
	ID int `arg:"" help:"Event ID from 'wcamp events list'"`
}

// Run executes the events select command
func (e *EventsSelectCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing events select command", "event", e.ID)

	event, err := cli.Container.EventService.Select(context.Background(), e.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Selected: %s\n", event.Title.Rendered)
	return nil
}

// EventsShowCmd shows the selected event
type EventsShowCmd struct{}

// Run executes the events show command
func (e *EventsShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	event, err := cli.Container.EventService.Selected(ctx)
	if err != nil {
		return err
	}

	fmt.Println(event.Title.Rendered)
	if event.Location != "" {
		fmt.Printf("Location:  %s\n", event.Location)
	}
	if event.VenueName != "" {
		fmt.Printf("Venue:     %s\n", event.VenueName)
	}
	dates := domain.FormatEventDate(event.StartDate)
	if end := domain.FormatEventDate(event.EndDate); end != "" && end != dates {
		dates += " - " + end
	}
	if dates != "" {
		fmt.Printf("Dates:     %s\n", dates)
	}
	fmt.Printf("Site:      %s\n", event.SiteURL())

	if media, err := cli.Container.EventService.Artwork(ctx, event); err != nil {
		logging.Logger.Warn("Failed to fetch event artwork", "error", err)
	} else if media != nil {
		if url := media.SourceURL(); url != "" {
			fmt.Printf("Artwork:   %s\n", url)
		}
	}

	details, err := cli.Container.EventService.Details(ctx, event)
	if err != nil {
		logging.Logger.Warn("Failed to fetch event details", "error", err)
		return nil
	}
	fmt.Printf("Timezone:  %s (GMT%+g)\n", details.Timezone, details.GMTOffset)

	if text := services.PlainText(event.Content.Rendered); text != "" {
		fmt.Printf("\n%s\n", text)
	}
	return nil
}

// EventsClearCmd forgets the selection
type EventsClearCmd struct{}

// Run executes the events clear command
func (e *EventsClearCmd) Run(cli *CLI) error {
	if err := cli.Container.EventService.ClearSelection(context.Background()); err != nil {
		return err
	}
	fmt.Println("Event selection cleared")
	return nil
}

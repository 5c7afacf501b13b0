package cmd

import (
	"context"
	"fmt"
	"strings"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/services"
)

// SessionsCmd lists the selected event's sessions
type SessionsCmd struct {
	Date     string `help:"Only sessions on a local date (YYYY-MM-DD)"`
	Speaker  int    `help:"Only sessions featuring a speaker ID"`
	Category int    `help:"Only sessions in a category ID"`
	Now      bool   `help:"Only sessions happening right now"`
}

// Run executes the sessions command
func (s *SessionsCmd) Run(cli *CLI) error {
	program, err := cli.Container.ProgramService.Load(context.Background())
	if err != nil {
		return err
	}

	sessions := program.Sessions
	switch {
	case s.Now:
		sessions = program.CurrentAt(cli.Container.Clock.Now())
	case s.Date != "":
		sessions = program.OnDate(s.Date)
	case s.Speaker != 0:
		sessions = program.BySpeaker(s.Speaker)
	case s.Category != 0:
		sessions = program.ByCategory(s.Category)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	var lastDate string
	for _, session := range sessions {
		view := program.StartTime(session)
		if date := view.LocalDate(); date != lastDate {
			if lastDate != "" {
				fmt.Println()
			}
			fmt.Printf("%s\n", domain.LongDate(date))
			lastDate = date
		}
		printSessionRow(program, session, view)
	}
	return nil
}

func printSessionRow(program *services.Program, session domain.Session, view domain.LocalTimeView) {
	end := domain.EndTimeOfDay(view.LocalTime, session.Meta.Duration)

	var extras []string
	if len(session.Tracks) > 0 {
		if track := program.TrackName(session.Tracks[0]); track != "" {
			extras = append(extras, track)
		}
	}
	for _, ref := range session.Speakers {
		if ref.Name != "" {
			extras = append(extras, ref.Name)
		}
	}

	suffix := ""
	if len(extras) > 0 {
		suffix = "  [" + strings.Join(extras, ", ") + "]"
	}
	fmt.Printf("  %-8d %s-%s  %s%s\n", session.ID, view.LocalTime, end, session.Title.Rendered, suffix)
}

// SpeakersCmd browses the selected event's speakers
type SpeakersCmd struct {
	List SpeakersListCmd `cmd:"list" help:"List the selected event's speakers" default:"1"`
	Show SpeakersShowCmd `cmd:"show" help:"Show a speaker's full bio and sessions"`
}

// SpeakersListCmd lists speakers
type SpeakersListCmd struct{}

// Run executes the speakers list command
func (s *SpeakersListCmd) Run(cli *CLI) error {
	program, err := cli.Container.ProgramService.Load(context.Background())
	if err != nil {
		return err
	}

	if len(program.Speakers) == 0 {
		fmt.Println("No speakers published yet")
		return nil
	}

	for _, speaker := range program.Speakers {
		talks := program.BySpeaker(speaker.ID)
		fmt.Printf("%-8d %-35s %d sessions\n", speaker.ID, speaker.Title.Rendered, len(talks))
	}
	return nil
}

// SpeakersShowCmd shows one speaker
type SpeakersShowCmd struct {
	ID int `arg:"" help:"Speaker ID from 'wcamp speakers list'"`
}

// Run executes the speakers show command
func (s *SpeakersShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	program, err := cli.Container.ProgramService.Load(ctx)
	if err != nil {
		return err
	}

	speaker, err := cli.Container.ProgramService.SpeakerDetail(ctx, program, s.ID)
	if err != nil {
		return err
	}

	fmt.Println(speaker.Title.Rendered)
	if bio := services.PlainText(speaker.Content.Rendered); bio != "" {
		fmt.Printf("\n%s\n", bio)
	}

	if talks := program.BySpeaker(speaker.ID); len(talks) > 0 {
		fmt.Println("\nSessions:")
		for _, session := range talks {
			printSessionRow(program, session, program.StartTime(session))
		}
	}
	return nil
}

// SponsorsCmd browses the selected event's sponsors
type SponsorsCmd struct {
	List SponsorsListCmd `cmd:"list" help:"List the selected event's sponsors" default:"1"`
	Show SponsorsShowCmd `cmd:"show" help:"Show a sponsor's description and logo URL"`
}

// SponsorsListCmd lists sponsors
type SponsorsListCmd struct{}

// Run executes the sponsors list command
func (s *SponsorsListCmd) Run(cli *CLI) error {
	program, err := cli.Container.ProgramService.Load(context.Background())
	if err != nil {
		return err
	}

	if len(program.Sponsors) == 0 {
		fmt.Println("No sponsors published yet")
		return nil
	}

	for _, sponsor := range program.Sponsors {
		fmt.Printf("%-8d %-35s %s\n", sponsor.ID, sponsor.Title.Rendered, sponsor.Meta.Website)
	}
	return nil
}

// SponsorsShowCmd shows one sponsor
type SponsorsShowCmd struct {
	ID int `arg:"" help:"Sponsor ID from 'wcamp sponsors list'"`
}

// Run executes the sponsors show command
func (s *SponsorsShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	program, err := cli.Container.ProgramService.Load(ctx)
	if err != nil {
		return err
	}

	sponsor, err := cli.Container.ProgramService.SponsorDetail(ctx, program, s.ID)
	if err != nil {
		return err
	}

	fmt.Println(sponsor.Title.Rendered)
	if sponsor.Meta.Website != "" {
		fmt.Printf("Website:  %s\n", sponsor.Meta.Website)
	}
	if sponsor.FeaturedMedia != 0 {
		media, err := cli.Container.ProgramService.MediaItem(ctx, program, sponsor.FeaturedMedia)
		if err != nil {
			logging.Logger.Warn("Failed to fetch sponsor logo",
				"sponsor", sponsor.ID, "error", err)
		} else if url := media.SourceURL(); url != "" {
			fmt.Printf("Logo:     %s\n", url)
		}
	}
	if text := services.PlainText(sponsor.Content.Rendered); text != "" {
		fmt.Printf("\n%s\n", text)
	}
	return nil
}

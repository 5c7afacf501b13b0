package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"wcamp/internal/logging"
)

// RemindCmd runs the reminder daemon: a periodic scan that fires desktop
// notifications for scheduled sessions about to start. Typically run in
// the background for the duration of an event.
type RemindCmd struct {
	Once bool `help:"Scan once and exit instead of running the daemon"`
}

// Run executes the remind command
func (r *RemindCmd) Run(cli *CLI) error {
	svc := cli.Container.ScheduleService

	if r.Once {
		fired, err := svc.ScanDue(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Fired %d reminders\n", fired)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cron.New()
	if _, err := c.AddFunc("@every 30s", func() {
		if _, err := svc.ScanDue(ctx); err != nil {
			logging.Logger.Error("Reminder scan failed", "error", err)
		}
	}); err != nil {
		return err
	}

	logging.Logger.Info("Reminder daemon started")
	fmt.Println("Reminder daemon running, press ctrl+c to stop")
	c.Start()

	<-ctx.Done()
	// Let an in-flight scan finish before exiting
	<-c.Stop().Done()
	logging.Logger.Info("Reminder daemon stopped")
	return nil
}

package cmd

import (
	"time"

	adapternotify "wcamp/internal/adapters/notify"
	adapterstorage "wcamp/internal/adapters/storage"
	adapterwordcamp "wcamp/internal/adapters/wordcamp"
	"wcamp/internal/config"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
	"wcamp/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ContactService  *services.ContactService
	EventService    *services.EventService
	ProgramService  *services.ProgramService
	ScheduleService *services.ScheduleService

	Clock ports.Clock

	// Internal - for cleanup only
	stateRepo ports.StateRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	dbPath := config.GetDBPath()
	if settings != nil && settings.DBPath != "" {
		dbPath = config.ExpandPath(settings.DBPath)
	}

	stateRepo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	var clientOpts []adapterwordcamp.Option
	if settings != nil && settings.CentralURL != "" {
		clientOpts = append(clientOpts, adapterwordcamp.WithCentralURL(settings.CentralURL))
	}
	client := adapterwordcamp.NewClient(clientOpts...)

	notifier := adapternotify.NewNotifier()
	clock := ports.RealClock{}

	var lead time.Duration
	if settings != nil && settings.ReminderLead != "" {
		parsed, err := time.ParseDuration(settings.ReminderLead)
		if err != nil {
			logging.Logger.Warn("Ignoring invalid reminder_lead setting",
				"value", settings.ReminderLead, "error", err)
		} else {
			lead = parsed
		}
	}

	eventService := services.NewEventService(client, stateRepo, clock)
	programService := services.NewProgramService(eventService, client)
	scheduleService := services.NewScheduleService(stateRepo, notifier, clock, lead)
	contactService := services.NewContactService(stateRepo)

	return &Container{
		ContactService:  contactService,
		EventService:    eventService,
		ProgramService:  programService,
		ScheduleService: scheduleService,
		Clock:           clock,
		stateRepo:       stateRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}

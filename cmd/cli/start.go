package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mockdesk/mockdesk/internal/calendar"
	"github.com/mockdesk/mockdesk/internal/config"
	"github.com/mockdesk/mockdesk/internal/controllers"
	"github.com/mockdesk/mockdesk/internal/server"
	"github.com/mockdesk/mockdesk/internal/slackbot"
	"github.com/mockdesk/mockdesk/internal/storage/mongodb"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart()
		},
	}

	return cmd
}

func runStart() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()

		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	stores := mongodb.NewStores(client.Database(cfg.MongoDatabase))
	if err := stores.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	var mirror slackbot.ScheduleMirror = calendar.DisabledMirror{}

	if cfg.CalendarConfigured() {
		googleMirror, err := calendar.NewGoogleMirror(ctx, calendar.Config{
			ServiceAccountEmail: cfg.GoogleServiceAccountEmail,
			PrivateKey:          cfg.GooglePrivateKey,
			ImpersonateSubject:  cfg.GoogleImpersonateSubject,
			DefaultCalendarID:   cfg.CalendarID,
			Timezone:            cfg.CalendarTimezone,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Calendar mirror disabled")
		} else {
			mirror = googleMirror
			log.Info().Str("timezone", cfg.CalendarTimezone).Msg("Calendar mirror enabled")
		}
	} else {
		log.Warn().Msg("No Google credentials configured, calendar mirror disabled")
	}

	router := slackbot.NewRouter(slackbot.RouterDependencies{
		Workspaces:  stores.Workspaces,
		Schedules:   stores.Schedules,
		Experiences: stores.Experiences,
		Settings:    stores.Settings,
		ModalOpener: slackbot.NewModalOpener(),
		Mirror:      mirror,
	})

	exchanger := slackbot.NewTokenExchanger(slackbot.TokenExchangerDependencies{
		ClientID:     cfg.SlackClientID,
		ClientSecret: cfg.SlackClientSecret,
		RedirectURI:  cfg.SlackRedirectURI,
	})

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		SlackController: controllers.NewSlackController(controllers.SlackControllerDependencies{
			TokenExchanger: exchanger,
			Workspaces:     stores.Workspaces,
			Router:         router,
		}),
		AdminController: controllers.NewAdminController(controllers.AdminControllerDependencies{
			Workspaces: stores.Workspaces,
			Settings:   stores.Settings,
		}),
		ScheduleController: controllers.NewScheduleController(controllers.ScheduleControllerDependencies{
			Schedules: stores.Schedules,
		}),
		AdminKey: cfg.AdminKey,
	})

	log.Info().Str("port", cfg.Port).Msg("Starting HTTP server")

	if err := app.Listen(":"+cfg.Port, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
	}

	log.Info().Msg("Service stopped")
	return nil
}

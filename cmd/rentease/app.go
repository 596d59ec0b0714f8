package main

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/abdsayeed/rentease-go/api"
	"github.com/abdsayeed/rentease-go/auth"
	"github.com/abdsayeed/rentease-go/bookings"
	"github.com/abdsayeed/rentease-go/internal/config"
	"github.com/abdsayeed/rentease-go/properties"
	"github.com/abdsayeed/rentease-go/session"
	"github.com/abdsayeed/rentease-go/session/store"
	"github.com/abdsayeed/rentease-go/transport"
	"github.com/abdsayeed/rentease-go/users"
)

// app holds the one instance of each service, constructed here and
// passed by reference to the commands.
type app struct {
	cfg        config.Config
	state      *session.State
	auth       *auth.Service
	users      *users.Client
	properties *properties.Client
	bookings   *bookings.Client
}

func newApp(cfg config.Config) (*app, error) {
	state := session.New(credentialStore(cfg))

	authService, err := auth.NewService(
		cfg.GetAPIBaseURL(),
		state,
		auth.WithHTTPClient(&http.Client{Timeout: cfg.GetRequestTimeout()}),
		auth.WithLogger(log.Logger),
		auth.WithNavigate(func(route string) {
			log.Info().Str("route", route).Msg("session ended, sign in again")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] auth service")
	}

	pipeline, err := transport.NewPipeline(state, authService, transport.WithLogger(log.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] pipeline")
	}

	httpClient := pipeline.Client()
	httpClient.Timeout = cfg.GetRequestTimeout()
	apiClient := api.NewClient(cfg.GetAPIBaseURL(), httpClient)

	return &app{
		cfg:        cfg,
		state:      state,
		auth:       authService,
		users:      users.NewClient(apiClient),
		properties: properties.NewClient(apiClient),
		bookings:   bookings.NewClient(apiClient),
	}, nil
}

// credentialStore picks durable storage when a data folder is available
// and degrades to the in-memory no-op store when it isn't.
func credentialStore(cfg config.Config) store.Store {
	folder := cfg.GetDataFolder()
	if folder == "" {
		return store.Noop{}
	}
	fileStore, err := store.NewFileStore(folder)
	if err != nil {
		log.Warn().Err(err).Str("folder", folder).Msg("credential store unavailable, session will not persist")
		return store.Noop{}
	}
	return fileStore
}

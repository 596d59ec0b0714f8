package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abdsayeed/rentease-go/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("rentease")
	}
}

func run() error {
	cfg := config.New()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.GetEnv() != "DEV" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	displayAppname(cfg.GetAppName())

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	return newRootCmd(app).Execute()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

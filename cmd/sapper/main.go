package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sapper/internal/config"
	"github.com/vancomm/sapper/internal/console"
	"github.com/vancomm/sapper/internal/mines"
	"github.com/vancomm/sapper/internal/tui"
)

var log = logrus.New()

func buildGenerator(c *config.Config) mines.Generator {
	if c.RandSeed != 0 {
		return mines.NewRandomGenerator(mines.NewSeededRand(c.RandSeed))
	}
	return mines.NewRandomGenerator(nil)
}

func run(ctx context.Context, c *config.Config) error {
	params, err := c.Params()
	if err != nil {
		return err
	}
	generator := buildGenerator(c)

	if c.UI == "tui" {
		if params == nil {
			params = &mines.Easy
		}
		return tui.NewRunner(log, generator).Run(ctx, *params)
	}
	return console.NewRunner(log, generator, os.Stdin, os.Stdout).Run(ctx, params)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	if err := config.SetupLogging(cfg, log, mines.Log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	if cfg.UI == "tui" && cfg.Log.File == "" {
		// the screen belongs to the game
		log.SetLevel(logrus.PanicLevel)
		mines.Log.SetLevel(logrus.PanicLevel)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return run(gCtx, cfg)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("exit reason: %s", err)
	}
}

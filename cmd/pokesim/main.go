// Command pokesim starts a single battle between two preconfigured
// parties and streams the battle log to stderr through logrus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sasakirione/pokesim/battleevent"
	"github.com/sasakirione/pokesim/config"
	"github.com/sasakirione/pokesim/creature"
	"github.com/sasakirione/pokesim/loader"
	"github.com/sasakirione/pokesim/logging"
	"github.com/sasakirione/pokesim/party"
	"github.com/sasakirione/pokesim/turn"
)

var (
	debug      = flag.Bool("debug", false, "Enable debug logging")
	remote     = flag.Bool("remote", false, "Load templates from the configured HTTP catalog instead of the built-in one")
	generation = flag.Int("generation", 9, "Rule generation to battle under")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 || flag.Arg(0) != "battle" {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] battle\n", os.Args[0])
		os.Exit(2)
	}

	base := logrus.New()
	if *debug {
		base.SetLevel(logrus.DebugLevel)
	}

	if err := run(context.Background(), base); err != nil {
		base.WithError(err).Error("battle aborted")
		os.Exit(1)
	}
}

func run(ctx context.Context, base *logrus.Logger) error {
	provider, err := newProvider(base)
	if err != nil {
		return err
	}

	redTeam, err := loadTeam(provider, "garchomp", "pikachu")
	if err != nil {
		return err
	}
	blueTeam, err := loadTeam(provider, "greninja", "snorlax")
	if err != nil {
		return err
	}

	log := logging.NewStdLogger(base, "battle")

	red, err := party.New(party.Config{
		Owner:     "Red",
		Creatures: redTeam,
		Input:     leadMoveInput(),
		Logger:    log,
	})
	if err != nil {
		return err
	}

	blue, err := party.New(party.Config{
		Owner:     "Blue",
		Creatures: blueTeam,
		Input:     leadMoveInput(),
		Logger:    log,
	})
	if err != nil {
		return err
	}

	battle, err := turn.NewBattle(turn.Config{
		PartyA:     red,
		PartyB:     blue,
		Generation: *generation,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	return battle.Run(ctx)
}

// newProvider picks the template source: the built-in catalog, or the
// HTTP catalog for the configured environment.
func newProvider(base *logrus.Logger) (loader.Provider, error) {
	if !*remote {
		return loader.NewDefaultProvider(), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	base.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"base_url":    cfg.BaseURL(),
	}).Debug("using remote template catalog")

	return loader.NewHTTPProvider(loader.HTTPProviderConfig{
		BaseURL: cfg.BaseURL(),
		Timeout: cfg.Provider.Timeout,
	}), nil
}

// loadTeam resolves each id through the provider.
func loadTeam(provider loader.Provider, ids ...string) ([]creature.Creature, error) {
	team := make([]creature.Creature, 0, len(ids))
	for _, id := range ids {
		c, err := loader.Load(provider, id)
		if err != nil {
			return nil, err
		}
		team = append(team, c)
	}
	return team, nil
}

// leadMoveInput always selects the active creature's first move.
func leadMoveInput() party.InputProvider {
	return func(context.Context) (battleevent.UserEvent, error) {
		return battleevent.SelectMove{Index: 0}, nil
	}
}

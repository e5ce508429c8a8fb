package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ZygmuntJakub/bridge/internal/config"
	"github.com/ZygmuntJakub/bridge/internal/engine"
	"github.com/ZygmuntJakub/bridge/internal/match"
	"github.com/ZygmuntJakub/bridge/internal/player"
	"github.com/ZygmuntJakub/bridge/internal/report"
)

func newSimulateCmd(v *viper.Viper, load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play games between random bots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return simulate(cmd, cfg, logger)
		},
	}
	cmd.Flags().Int("games", 1, "number of games to play")
	mustBind(v, "games", cmd.Flags().Lookup("games"))
	return cmd
}

func simulate(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	logger.Info("starting simulation", zap.Uint64("seed", seed), zap.Int("games", cfg.Games))

	table, err := player.NewTable(cfg.Players, func(_ engine.Seat, name string) player.Player {
		return player.NewRandomBot(name, rng)
	})
	if err != nil {
		return err
	}

	var summary match.Summary
	for i := 0; i < cfg.Games; i++ {
		observers := engine.Observers{report.NewLogObserver(logger, cfg.Players)}
		if cfg.Verbose {
			console := report.NewConsole(cmd.OutOrStdout(), cfg.Players)
			console.Verbose = true
			observers = append(observers, console)
		}
		r := &match.Runner{
			Supplier: engine.StandardSupplier{},
			Rand:     rng,
			Decider:  table,
			Observer: observers,
			Settings: match.Settings{
				MinHandValue: cfg.MinHandValue,
				MaxRedeals:   cfg.MaxRedeals,
				MaxAttempts:  cfg.MaxAttempts,
			},
		}
		res, err := r.Play(cmd.Context(), cfg.Players)
		if err != nil {
			return err
		}
		summary.Add(res)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "games: %d  declarers: %d  defenders: %d  exhausted: %d\n",
		summary.Games, summary.Declarers, summary.Defenders, summary.Exhausted)
	for _, name := range cfg.Players {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %d\n", name, summary.Wins[name])
	}
	return nil
}

package main

import (
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

func newPlayCmd(v *viper.Viper, load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game at the console against three bots",
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

			seed := cfg.Seed
			if seed == 0 {
				seed = rand.Uint64()
			}
			rng := rand.New(rand.NewPCG(seed, seed))

			table, err := player.NewTable(cfg.Players, func(s engine.Seat, name string) player.Player {
				if int(s)+1 == cfg.HumanSeat {
					return player.NewConsole(name, int(s)+1, cmd.InOrStdin(), cmd.OutOrStdout())
				}
				return player.NewRandomBot(name, rng)
			})
			if err != nil {
				return err
			}
			console := report.NewConsole(cmd.OutOrStdout(), cfg.Players)
			console.Verbose = true

			r := &match.Runner{
				Supplier: engine.StandardSupplier{},
				Rand:     rng,
				Decider:  table,
				Observer: engine.Observers{report.NewLogObserver(logger, cfg.Players), console},
				Settings: match.Settings{
					MinHandValue: cfg.MinHandValue,
					MaxRedeals:   cfg.MaxRedeals,
					MaxAttempts:  0, // ask the person until they answer
				},
			}
			res, err := r.Play(cmd.Context(), cfg.Players)
			if err != nil {
				return err
			}
			logger.Info("game finished",
				zap.String("game_id", res.Game.ID.String()),
				zap.Int("deals", res.Deals),
				zap.Stringer("reason", res.Outcome.Reason))
			return nil
		},
	}
	cmd.Flags().Int("seat", 1, "your seat, 1-4")
	mustBind(v, "human_seat", cmd.Flags().Lookup("seat"))
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZygmuntJakub/bridge/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "bridge",
		Short:         "Four-player floating bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().Uint64("seed", 0, "random seed, 0 for a random one")
	root.PersistentFlags().StringSlice("players", nil, "four player names in seat order")
	root.PersistentFlags().Bool("verbose", false, "print every bid and card")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	root.PersistentFlags().String("log-format", "", "console or json")
	mustBind(v, "seed", root.PersistentFlags().Lookup("seed"))
	mustBind(v, "players", root.PersistentFlags().Lookup("players"))
	mustBind(v, "verbose", root.PersistentFlags().Lookup("verbose"))
	mustBind(v, "log.level", root.PersistentFlags().Lookup("log-level"))
	mustBind(v, "log.format", root.PersistentFlags().Lookup("log-format"))

	load := func() (*config.Config, error) {
		return config.Load(v, cfgFile)
	}
	root.AddCommand(newSimulateCmd(v, load), newPlayCmd(v, load))
	return root
}

// Package cli wires the percolate commands onto cobra.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolate/internal/config"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	log     *log.Logger
	cfgFile string
}

// NewRootCommand builds the percolate command tree with a fresh viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: log.New(io.Discard, "percolate: ", 0),
	}

	root := &cobra.Command{
		Use:   "percolate",
		Short: "Percolation threshold estimation with union-find",
		Long: "percolate opens random sites of an n-by-n grid until the top row connects to the\n" +
			"bottom row, and estimates the percolation threshold over many independent trials.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .percolate.{yaml,toml,json})")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.AddCommand(a.statsCmd(), a.simulateCmd(), a.ufCmd(), a.randomWordCmd())
	return root
}

// initConfig runs after flag parsing: config file, env vars, logger.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	} else {
		a.v.SetConfigName(".percolate")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = a.v.ReadInConfig()
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.AutomaticEnv()

	if a.v.GetBool("verbose") {
		a.log.SetOutput(cmd.ErrOrStderr())
	}
	return nil
}

// seed returns s, or a clock-derived seed when s is 0.
func (a *app) seed(s int64) int64 {
	if s == 0 {
		s = time.Now().UnixNano()
		a.log.Printf("seed %d", s)
	}
	return s
}

package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-leo/specfilter/filter"
	"github.com/go-leo/specfilter/internal/config"
	"github.com/go-leo/specfilter/product"
)

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		cfg:    config.DefaultConfig(),
		logger: zerolog.Nop(),
	}

	cmd := &cobra.Command{
		Use:          "specfilter",
		Short:        "Specification based filtering and a file backed journal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, config.SearchPaths()...)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Debug)
			a.logger.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	_ = a.v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.AddCommand(a.demoCmd(), a.filterCmd(), a.journalCmd())
	return cmd
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// newFilter returns the product filter selected by the configuration, wrapped with logging.
func (a *app) newFilter() filter.Filter[product.Product] {
	var f filter.Filter[product.Product]
	if a.cfg.Parallel {
		f = filter.NewParallel[product.Product](filter.ChunkSize(a.cfg.ChunkSize))
	} else {
		f = filter.New[product.Product]()
	}
	return filter.Chain(f, filter.Logging[product.Product](a.logger))
}

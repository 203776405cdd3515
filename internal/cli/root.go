// internal/cli/root.go
//
// Command-line entry point for blockqueue.
// Responsibilities:
//   - Define the cobra root command and its flags.
//   - Merge flags over the environment config and validate it.
//   - Set up zerolog on stderr, build the controller and run the console.
//   - Print the session summary and exit through atexit.
//
// Notes:
//   - cobra's own error printing is silenced; Execute logs the error once.

// Package cli provides the command-line entry point for blockqueue.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/robalobadob/blockqueue/internal/config"
	"github.com/robalobadob/blockqueue/internal/console"
	"github.com/robalobadob/blockqueue/internal/game"
	"github.com/robalobadob/blockqueue/internal/messages"
	"github.com/robalobadob/blockqueue/internal/piece"
)

var flags struct {
	logLevel     string
	lang         string
	seed         int64
	messagesFile string
}

// rootCmd runs one interactive session.
var rootCmd = &cobra.Command{
	Use:   "blockqueue",
	Short: "Interactive piece queue and reserve stack simulator.",
	Long: `blockqueue keeps a queue of the next 5 pieces and a reserve stack of up to 3. ` +
		`Pick menu options to play, reserve, use reserved pieces or swap between the two.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.logLevel, "log-level", "", "zerolog level (overrides LOG_LEVEL)")
	f.StringVar(&flags.lang, "lang", "", "message language: en or pt (overrides GAME_LANG)")
	f.Int64Var(&flags.seed, "seed", 0, "random seed, 0 seeds from the clock (overrides PIECE_SEED)")
	f.StringVar(&flags.messagesFile, "messages", "", "catalog file overlaying the built-in texts (overrides GAME_MESSAGES_FILE)")
}

// applyFlags copies explicitly set flags over the environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if f.Changed("lang") {
		cfg.Lang = flags.lang
	}
	if f.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if f.Changed("messages") {
		cfg.MessagesFile = flags.messagesFile
	}
}

// setupLogging sends human-readable logs to stderr so they stay off the game screen.
func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// run wires config into a controller and drives the console until it ends.
func run(cfg config.Config, in io.Reader, out io.Writer) error {
	setupLogging(cfg.Level())

	msgs, err := messages.Load(cfg.Lang, cfg.MessagesFile)
	if err != nil {
		return err
	}

	ctrl := game.New(piece.NewGenerator(piece.NewSource(cfg.Seed)))
	log.Debug().Str("session", ctrl.ID()).Str("lang", msgs.Lang()).Int64("seed", cfg.Seed).Msg("console ready")
	atexit.Register(func() { logSummary(log.Logger, ctrl, msgs) })

	err = console.New(ctrl, msgs, in, out).Run()
	summarize(out, msgs, ctrl)
	return err
}

// summarize prints the closing line of a session.
func summarize(out io.Writer, msgs *messages.Catalog, ctrl *game.Controller) {
	_, _ = io.WriteString(out, msgs.Format(messages.Summary, ctrl.ID(), ctrl.Commands(), ctrl.Generated())+"\n")
}

// logSummary records the same figures for the log stream.
func logSummary(logger zerolog.Logger, ctrl *game.Controller, msgs *messages.Catalog) {
	logger.Info().
		Str("session", ctrl.ID()).
		Str("lang", msgs.Lang()).
		Int("commands", ctrl.Commands()).
		Int("generated", ctrl.Generated()).
		Msg("session closed")
}

// Execute runs the root command and exits through atexit so registered
// handlers fire on every path.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("blockqueue failed")
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

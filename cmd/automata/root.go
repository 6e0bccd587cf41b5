package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	automata "github.com/evertonsc/automata-2024-t2"
	"github.com/evertonsc/automata-2024-t2/internal/config"
	"github.com/evertonsc/automata-2024-t2/internal/logging"
)

// app carries what every subcommand needs once the persistent flags are resolved.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	flags      config.Config

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logging.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "automata",
		Short: "Load, run and determinize finite automata",
		Long: `automata reads a five-section automaton description (alphabet, states, final states,
initial state, then one "origin symbol destination" transition per line, & for epsilon),
runs words against it and converts nondeterministic automata to deterministic ones.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVarP(&a.flags.Output, "output", "o", "", "report encoding (text, json, yaml)")
	flags.BoolVar(&a.flags.Deterministic, "deterministic", false, "reject epsilon transitions and duplicate (state, symbol) pairs")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newRunCmd(a),
		newConvertCmd(a),
	)
	return rootCmd
}

// setup layers defaults, the config file and the flags, then builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg.Merge(&a.flags)

	// Merge skips zero values, so flags explicitly set back to false or 0 are applied here.
	if cmd.Flags().Changed("deterministic") {
		cfg.Deterministic = a.flags.Deterministic
	}
	if cmd.Flags().Changed("work-limit") {
		cfg.WorkLimit = a.flags.WorkLimit
	}
	cfg.Output = strings.ToLower(cfg.Output)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(a.stderr, level)
	return nil
}

func (a *app) loadOptions() []automata.Option {
	if a.cfg.Deterministic {
		return []automata.Option{automata.WithDeterministic()}
	}
	return nil
}

func (a *app) load(name string) (*automata.Automaton, error) {
	fa, err := automata.LoadFile(name, a.loadOptions()...)
	if err != nil {
		a.logger.Debug("load failed", "file", name, "error", err)
		return nil, err
	}
	a.logger.Debug("loaded automaton",
		"file", name,
		"states", fa.NumStates(),
		"transitions", fa.NumTransitions(),
		"deterministic", fa.IsDeterministic(),
	)
	return fa, nil
}

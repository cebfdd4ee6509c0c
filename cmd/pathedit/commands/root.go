// Package commands provides the CLI commands for pathedit.
package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yamledit/pathedit"
	"github.com/yamledit/pathedit/internal/config"
	"github.com/yamledit/pathedit/internal/logging"
)

// Version information set at build time
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath    string
	configSection string
	delimiter     string
	indent        int
	output        string
	logLevel      string
	prettyLogs    bool

	cfg config.Config
	log zerolog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathedit",
		Short: "Read, write and delete values in YAML/JSON documents by path",
		Long: `pathedit addresses values inside nested YAML or JSON documents with
delimited paths such as "service/envs/HOME". The input file is never
modified; the resulting document is written to stdout.

Output is normalized: mapping keys are sorted and comments, anchors
and the original formatting are not preserved.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.configSection, "config-section", "", "colon-separated section of the config file to read")
	flags.StringVarP(&a.delimiter, "delimiter", "d", "", "path delimiter (default \"/\")")
	flags.IntVar(&a.indent, "indent", 0, "YAML indentation (default 2)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: yaml|json (default yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (DEBUG|INFO|WARN|ERROR)")
	flags.BoolVar(&a.prettyLogs, "pretty-logs", false, "human-readable logs on stderr")

	root.SetVersionTemplate(fmt.Sprintf("pathedit %s (%s)\n", Version, BuildTime))

	root.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newDeleteCmd(a),
		newPatchCmd(a),
		newMergeCmd(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup resolves the effective settings: config file first, then flags on top.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath, a.configSection)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.delimiter != "" {
		cfg.Delimiter = a.delimiter
	}
	if a.indent != 0 {
		cfg.Indent = a.indent
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: cmd.ErrOrStderr(),
		Pretty: a.prettyLogs,
	})
	a.log.Debug().
		Str("delimiter", cfg.Delimiter).
		Bool("prune", cfg.PruneEnabled()).
		Str("output", cfg.Output).
		Msg("settings resolved")
	return nil
}

func (a *app) pathOptions() []pathedit.Option {
	return []pathedit.Option{
		pathedit.WithDelimiter(a.cfg.Delimiter),
		pathedit.WithPrune(a.cfg.PruneEnabled()),
	}
}

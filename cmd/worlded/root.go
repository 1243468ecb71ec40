package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/worlded/config"
	"github.com/katalvlaran/worlded/editor"
	"github.com/katalvlaran/worlded/internal/ui"
	"github.com/katalvlaran/worlded/logging"
)

// errReported marks a failure whose status line was already printed.
var errReported = errors.New("worlded: command failed")

var (
	configPath string
	verbose    bool

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "worlded",
	Short: "worlded - edit WorldEd vertex/line maps",
	Long: ui.Brand.Sprint("worlded") + " - create, connect and inspect WorldEd maps\n" +
		ui.Subtle.Sprint("Every command applies the same gestures as the graphical editor"),
	Version:       editor.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			c.Log.Debug = true
		}
		cfg = c
		logCloser = cfg.Log.Setup()
		logging.Debugf("config loaded from %s", configPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate("worlded {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(
		newCmd(),
		infoCmd(),
		validateCmd(),
		addCmd(),
		connectCmd(),
		deleteCmd(),
		replayCmd(),
		versionCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openEditor loads path into a new editor built from the active config.
func openEditor(cmd *cobra.Command, path string) (*editor.Editor, error) {
	e := editor.New(cfg.Editor, editor.WithStrictLoad(cfg.Map.StrictLoad))
	if err := report(cmd, e.Open(path)); err != nil {
		return nil, err
	}
	return e, nil
}

// report prints st and turns anything but Info into errReported.
func report(cmd *cobra.Command, st editor.Status) error {
	if st.OK() {
		ui.Status(cmd.OutOrStdout(), st)
		return nil
	}
	ui.Status(cmd.ErrOrStderr(), st)
	return errReported
}

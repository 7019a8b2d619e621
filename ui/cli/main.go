// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Aerocode using the Cobra
// library. It defines the root command, its flags, configuration loading
// and the version subcommand.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/aerocode/aerocode/buildvars"
	"github.com/aerocode/aerocode/internal/config"
	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/logging"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/aerocode/aerocode/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const modulePath = "github.com/aerocode/aerocode"

var cfgFile string
var verbose bool

// appConfig is loaded once per command by setupDefaultServices.
var appConfig config.Config

// configUsed is the file appConfig was read from, or "" on defaults.
var configUsed string

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, configUsed, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if appConfig.Language == "" {
		appConfig.Language = i18n.DefaultLang
	}

	i18n.Init(appConfig.Language)

	if verbose {
		logging.SetDebug(true)
	} else if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v, using info", err)
		logging.SetDebug(false)
	}
	if configUsed != "" {
		logging.Debugf("config loaded from %s", configUsed)
	}
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aerocode",
		Short: "Aerocode is a terminal mockup of an aerospace production manager.",
		Long: `Aerocode shows the screens of an aerospace production-management
tool: login, dashboard, projects, reports, settings and profile. All data
is built-in sample data; nothing is stored or sent anywhere.

Running without a subcommand will launch the interactive TUI.`,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (written to aerocode.log while the TUI runs)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "", `UI language ("pt-BR", "en")`)

	cmd.AddCommand(
		newRenderCmd(),
		newProjectsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// runTUI starts the interactive program. The terminal belongs to the TUI
// while it runs, so log output goes to a file in verbose mode and is
// dropped otherwise.
func runTUI() error {
	if verbose {
		f, err := tea.LogToFile("aerocode.log", "aerocode")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}
	defer logging.SetOutput(os.Stderr)

	return tui.Run(tui.Options{
		User:         configUser(),
		AltScreen:    appConfig.UI.AltScreen && term.IsTerminal(int(os.Stdout.Fd())),
		SaveLanguage: saveLanguage,
	})
}

func configUser() model.User {
	return model.User{Name: appConfig.User.Name, Email: appConfig.User.Email}
}

// saveLanguage persists a language picked in the settings page to the
// config file in use, or to the user config path when running on defaults.
// Only the language changes; env and flag overrides stay out of the file.
func saveLanguage(lang string) error {
	path := configUsed
	if path == "" {
		p, err := config.GetConfigPath(false)
		if err != nil {
			return err
		}
		path = p
	}
	stored, err := config.ReadConfigFile[config.Config](path, config.Defaults())
	if err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}
	stored.Language = lang
	if err := config.WriteConfigFile(&stored, path); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}
	appConfig.Language = lang
	configUsed = path
	logging.Infof("language %s saved to %s", lang, path)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" && c != v {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. Values linked into buildvars win; otherwise
// the module build info is consulted. If info is nil, it is read from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.CommitOrDefault("dev")
	resolvedDate := buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if buildvars.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && buildvars.Commit == "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && buildvars.Date == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit, which still helps support.
	if resolvedVersion == "dev" && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

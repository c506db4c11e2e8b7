package main

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/bounded_go/bounded"
	"github.com/on-the-ground/bounded_go/internal/configkeys"
	"github.com/on-the-ground/bounded_go/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "v0.1.0"

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfg    *viper.Viper
	logger *zap.Logger
}

// execute runs root and detaches the logger afterwards, whether or not the
// command failed. cobra skips post-run hooks on error, so this cannot live
// in PersistentPostRunE.
func execute(root *cobra.Command, a *app) error {
	defer a.close()
	return root.Execute()
}

func (a *app) close() {
	bounded.SetLogger(nil)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{cfg: viper.New()}
	var configFile string

	root := &cobra.Command{
		Use:          "boundeddemo",
		Short:        "Demonstrates fixed-capacity storage and bounded functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd, configFile); err != nil {
				return err
			}
			a.logger = logging.NewConsole(cmd.ErrOrStderr(), a.cfg.GetBool(configkeys.ConfigLogVerbose))
			bounded.SetLogger(a.logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug records to stderr")
	root.PersistentFlags().Int("slots", 16, "dispatch table slots")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newPolyCmd())
	root.AddCommand(newFunctionCmd())
	root.AddCommand(newDispatchCmd(a))

	return root, a
}

// load resolves settings with precedence flag > env > config file > default.
func (a *app) load(cmd *cobra.Command, configFile string) error {
	v := a.cfg
	v.SetEnvPrefix(configkeys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(configkeys.ConfigDispatchSlots, 16)

	if err := v.BindPFlag(configkeys.ConfigLogVerbose, cmd.Flags().Lookup("verbose")); err != nil {
		return fmt.Errorf("bind verbose: %w", err)
	}
	if err := v.BindPFlag(configkeys.ConfigDispatchSlots, cmd.Flags().Lookup("slots")); err != nil {
		return fmt.Errorf("bind slots: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the boundeddemo version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "boundeddemo", version)
		},
	}
}

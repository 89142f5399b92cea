// Package cmd provides the root command and CLI setup for mutman.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"mutman.dev/pkg/mutman/internal/adapter"
	"mutman.dev/pkg/mutman/internal/controller"
	"mutman.dev/pkg/mutman/internal/domain"
	m "mutman.dev/pkg/mutman/internal/model"
)

// operations is the orchestrator surface the commands depend on.
type operations interface {
	Run(ctx context.Context, target, testCommand, options, venvPath string) m.Outcome
	Results(ctx context.Context, venvPath string) m.Outcome
	Survivors(ctx context.Context, venvPath string) m.Outcome
	Suggest(ctx context.Context, venvPath string) m.Outcome
	PrioritizeSurvivors(ctx context.Context, venvPath string) m.Outcome
	Rerun(ctx context.Context, mutationID, venvPath string) m.Outcome
	Show(ctx context.Context, mutationID, venvPath string) m.Outcome
	Clean(ctx context.Context, venvPath string) m.Outcome
}

var envResolver adapter.EnvResolver
var processRunner adapter.ProcessRunner
var cacheAdapter adapter.CacheAdapter
var reportStore adapter.ReportStore
var orchestrator operations

// errOperationFailed signals a failure outcome already rendered by the
// UI; Execute only needs the nonzero exit.
var errOperationFailed = errors.New("operation failed")

// venvPathFlag is a root-level flag shared by every command that
// invokes the mutation tool.
var venvPathFlag string

// verboseFlag raises log verbosity to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	envResolver = adapter.NewLocalEnvResolver()
	processRunner = adapter.NewLocalProcessRunner()
	cacheAdapter = adapter.NewLocalCacheAdapter()
	reportStore = adapter.NewYAMLReportStore()
	orchestrator = domain.NewOrchestrator(envResolver, processRunner, cacheAdapter, domain.Config{
		RunTimeout:   parseTimeout(runTimeoutKey, defaultRunTimeout),
		QueryTimeout: parseTimeout(queryTimeoutKey, defaultQueryTimeout),
		CachePath:    m.Path(viper.GetString(cachePathKey)),
	})
}

const rootLongDescription = `Mutman manages mutation testing sessions with mutmut: it runs the tool,
parses its reports into structured results, ranks the modules most in
need of additional test coverage, and exposes all of it both on the
command line and as MCP tools for automation clients (see 'serve').

A virtual environment can be supplied with --venv so the tool binary
from that environment is used instead of the one on PATH.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "mutman",
		Short:         "Mutation testing session manager for mutmut",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(
			&venvPathFlag, venvFlagName,
			viper.GetString(venvConfigKey),
			"path to the project virtual environment holding the mutation tool",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(venvFlagName), venvConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errOperationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}

// venvPath returns the venv selected by flag, config or environment.
func venvPath() string {
	return viper.GetString(venvConfigKey)
}

// render hands an outcome to the UI and reports failures as errors so
// the process exits nonzero.
func render(ui controller.UI, outcome m.Outcome, display func() error) error {
	if !outcome.OK {
		if err := ui.DisplayFailure(outcome); err != nil {
			return err
		}

		return errOperationFailed
	}

	if display == nil {
		return nil
	}

	return display()
}

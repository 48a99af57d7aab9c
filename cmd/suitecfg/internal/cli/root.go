// Package cli provides command-line interface setup for suitecfg.
package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"selfhostlit/cmd/suitecfg/shared"
	"selfhostlit/internal/logger"
	"selfhostlit/internal/site"
	"selfhostlit/internal/suite"
	"selfhostlit/internal/version"
)

// App represents the suitecfg CLI application
type App struct {
	Config *shared.Config
}

// NewApp creates a new suitecfg CLI application
func NewApp() *App {
	return &App{
		Config: shared.NewConfig(),
	}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "suitecfg",
		Short: "Test suite descriptor for the SelfhostCompiler tests",
		Long: `suitecfg builds the descriptor a lit-style test engine uses to run the
SelfhostCompiler test suite: where the tests live, which files are tests,
how %compiler and %gcc are substituted and which features are available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Configure(app.Config.LogLevel, app.Config.LogFile); err != nil {
				return fmt.Errorf("failed to configure logger: %w", err)
			}
			if err := version.ValidateVersion(); err != nil {
				logger.Warn("Build version is not a semantic version", "error", err)
			}
			logger.Debug("Starting suitecfg",
				"session", uuid.NewString(),
				"version", version.GetVersion(),
				"development", version.IsDevelopment(),
				"command", cmd.Name())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.Config.Verbose, "verbose", "v", false, "Verbose output")
	flags.StringVar(&app.Config.TestDir, "test-dir", shared.DefaultTestDir, "Test suite directory or suite description file")
	flags.StringVar(&app.Config.SiteConfig, "site-config", "", "Site file providing compiler_path and my_test_exec_root (default: lit.site.yaml in the test directory)")
	flags.StringVar(&app.Config.EnvFile, "env-file", shared.DefaultEnvFile, "Dotenv file with SELFHOST_* values")
	flags.StringVar(&app.Config.LogLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.StringVar(&app.Config.LogFile, "log-file", "", "Write logs to file instead of stderr")
	flags.String(site.FlagNames[site.KeyCompilerPath], "", "Path to the compiler under test")
	flags.String(site.FlagNames[site.KeyExecRoot], "", "Directory for test outputs")

	app.addDescriptorCommands(rootCmd)
	app.addQueryCommands(rootCmd)
	app.addGoldenFileCommands(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}

// Execute runs the root command and logs the error that ends it, if any.
func Execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("suitecfg failed", "error", err)
	}
	return err
}

// loadDescriptor resolves the site values and builds the suite descriptor
func (app *App) loadDescriptor(cmd *cobra.Command) (*suite.Config, error) {
	searchDirs := []string{"."}
	if root, err := suite.ResolveSourceRoot(app.Config.TestDir); err == nil {
		searchDirs = []string{root, "."}
	}

	values, err := site.Load(site.Options{
		SiteFile:        app.Config.SiteConfig,
		SearchDirs:      searchDirs,
		EnvFile:         app.Config.EnvFile,
		EnvFileRequired: cmd.Flags().Changed("env-file"),
		Flags:           cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load site values: %w", err)
	}

	desc, err := suite.Build(values, app.Config.TestDir)
	if err != nil {
		return nil, fmt.Errorf("failed to configure suite: %w", err)
	}

	logf := logger.Debug
	if app.Config.Verbose {
		logf = logger.Info
	}
	logf("Suite configured",
		"suite", desc.Name,
		"path", desc.SourceRoot,
		"exec_root", desc.ExecRoot)
	return desc, nil
}

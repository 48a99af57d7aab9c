package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"selfhostlit/cmd/suitecfg/internal/golden"
	"selfhostlit/internal/render"
)

// addDescriptorCommands adds commands that print the descriptor
func (app *App) addDescriptorCommands(rootCmd *cobra.Command) {
	var output string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the suite descriptor",
		Long: `Build the suite descriptor from the site values and print it.
YAML and JSON are meant for the test engine; markdown is rendered for the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}
			desc, err := app.loadDescriptor(cmd)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), desc, format)
		},
	}
	showCmd.Flags().StringVarP(&output, "output", "o", string(render.FormatYAML), "Output format (yaml|json|markdown)")

	rootCmd.AddCommand(showCmd)
}

// addQueryCommands adds commands answering questions a test engine asks the descriptor
func (app *App) addQueryCommands(rootCmd *cobra.Command) {
	substCmd := &cobra.Command{
		Use:   "subst <run-line>",
		Short: "Apply the suite substitutions to a RUN line",
		Long: `Replace %compiler and %gcc in a RUN line, in order, and print the result.
Fails if the substituted line is not a valid shell command. Nothing is executed.
Put -- before a line that contains flags of its own.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := app.loadDescriptor(cmd)
			if err != nil {
				return err
			}
			line, err := desc.ExpandRunLine(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	matchCmd := &cobra.Command{
		Use:   "match <path>...",
		Short: "Report which paths are test files",
		Long:  `Print "test" or "skip" for each path according to the suite suffixes.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := app.loadDescriptor(cmd)
			if err != nil {
				return err
			}
			for _, path := range args {
				verdict := "skip"
				if desc.IsTestFile(path) {
					verdict = "test"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, path)
			}
			return nil
		},
	}

	requiresCmd := &cobra.Command{
		Use:   "requires <feature>...",
		Short: "Check that the suite provides features",
		Long: `Exit with status 0 if every feature is available to the suite's tests,
as a REQUIRES: line would check. Missing features are listed otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := app.loadDescriptor(cmd)
			if err != nil {
				return err
			}
			if missing := desc.Requires(args...); len(missing) > 0 {
				return fmt.Errorf("missing features: %s", strings.Join(missing, ", "))
			}
			if app.Config.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "all features available: %s\n", strings.Join(args, ", "))
			}
			return nil
		},
	}

	rootCmd.AddCommand(substCmd, matchCmd, requiresCmd)
}

// addGoldenFileCommands adds golden file commands for the descriptor
func (app *App) addGoldenFileCommands(rootCmd *cobra.Command) {
	recordCmd := &cobra.Command{
		Use:   "record <golden-file>",
		Short: "Record the descriptor as a golden file",
		Long: `Write the normalized descriptor to a golden file. Machine-specific paths
are replaced by placeholders so the file can be checked in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := app.loadDescriptor(cmd)
			if err != nil {
				return err
			}
			return golden.NewRecorder(app.Config).Record(desc, args[0])
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <golden-file>",
		Short: "Compare the descriptor with a golden file",
		Long: `Compare the normalized descriptor with a golden file and show the differences.
Returns exit code 0 if they match, non-zero otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := app.loadDescriptor(cmd)
			if err != nil {
				return err
			}
			return golden.NewDiffer(app.Config, cmd.OutOrStdout()).Check(desc, args[0])
		},
	}

	rootCmd.AddCommand(recordCmd, checkCmd)
}

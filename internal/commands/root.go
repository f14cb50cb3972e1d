package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/koinlyconv/internal/buildinfo"
)

// UsageError reports a bad command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Msg: fmt.Sprintf("expected exactly one input file, got %d (e.g. %s deposit.csv)", len(args), cmd.Name())}
	}
	return nil
}

// NewRootCommand creates the koinlyconv CLI command.
func NewRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     "koinlyconv <input.csv>",
		Short:   "Convert exchange stablecoin deposits and withdrawals to Koinly CSV",
		Version: buildinfo.String(),
		Args:    exactlyOneInput,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	rootCmd.Flags().BoolVar(&opts.summary, "summary", false, "print per-pair totals to stderr")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log detection and counts to stderr")

	return rootCmd
}

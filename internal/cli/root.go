package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "1.0.0"

// NewRootCommand builds the hrctl command tree
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "hrctl",
		Short: "hrctl - resting heart rate estimates from body measurements",
		Long: `hrctl runs the heart rate estimator locally or against a running
Heart Rate Monitor API.

Example:
  hrctl predict --height 180 --weight 75 --age 30 --gender male --body-size medium
  hrctl predict --height 180 --weight 75 --age 30 --gender male --body-size medium --explain
  hrctl predict --server http://localhost:5000 --height 180 --weight 75 --age 30 --gender male --body-size medium`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(newPredictCommand(&verbose))
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs the CLI
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hrctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// logVerbose logs a message to w if verbose mode is enabled
func logVerbose(w io.Writer, verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(w, "[hrctl] "+format+"\n", args...)
	}
}

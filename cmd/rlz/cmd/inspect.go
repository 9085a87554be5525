package cmd

import (
	"os"

	"rlz/cli"

	"github.com/spf13/cobra"
)

var inspectLimit int

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.rlz>",
	Short: "Prints the records in a compressed file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cfg.Format()
		if err != nil {
			return err
		}
		encoded, err := cli.ReadInputFile(args[0])
		if err != nil {
			return err
		}
		records, summary, err := cli.Inspect(encoded, format)
		if err != nil {
			return err
		}

		cli.RenderRecords(os.Stdout, records, inspectLimit)
		cli.RenderSummary(os.Stdout, summary)
		return nil
	},
}

func init() {
	inspectCmd.Flags().IntVar(&inspectLimit, cli.FlagLimit, 32, "Maximum number of records to print; 0 prints all of them.")
	rootCmd.AddCommand(inspectCmd)
}

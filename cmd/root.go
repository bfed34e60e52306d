package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"piutang/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "piutang",
	Short: "Piutang - accounts receivable reports from invoice spreadsheets",
	Long: `Piutang reads invoice records from Google Sheets, a local xlsx/xls workbook
or an HTTP backend and turns them into a grouped receivables report with
running totals, ready to paste into a chat or email.`,
	Version:      version,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Debug().
			Str("version", version).
			Msg("Piutang CLI executed")

		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to Piutang!")
		fmt.Fprintln(cmd.OutOrStdout(), "Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent(logger.ComponentCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
	rootCmd.PersistentFlags().String("source", "", "Record source: sheets, workbook or http (default: RECORD_SOURCE)")
}

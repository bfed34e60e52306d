package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"piutang/internal/config"
	"piutang/internal/logger"
	"piutang/internal/receivable"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List the distinct customers of the current record set",
	Long: `Fetch invoice records and print the distinct customer names in the order
they first appear, as a JSON array of {"label", "value"} options.

The values can be passed back to "piutang report --customer".`,
	Example: `  piutang customers
  piutang customers --source workbook`,
	RunE: runCustomers,
}

var statusesCmd = &cobra.Command{
	Use:   "statuses",
	Short: "List the payment status choices",
	Long: `Print the payment status choices as a JSON array of {"label", "value"}
options. The values can be passed to "piutang report --status".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeOptions(cmd, receivable.StatusOptions())
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(statusesCmd)
}

func runCustomers(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent(logger.ComponentReport)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	session, err := loadSession(ctx, cfg, selectedSource(cmd, cfg), receivable.ReportFilter{})
	if err != nil {
		return err
	}

	options := session.Customers()
	log.Debug().Int("customers", len(options)).Msg("Customer options built")

	return writeOptions(cmd, options)
}

func writeOptions(cmd *cobra.Command, options []receivable.Option) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(options); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"piutang/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List saved report filters",
	Long: `List the report presets defined in REPORT_PRESETS_FILE (default: presets.yaml).

Example file:

  presets:
    januari:
      description: Open invoices due in January
      sort_by: dueDate
      start: 2024-01-01
      end: 2024-01-31
      status: unsettled
    maju-jaya:
      sort_by: po
      customers: [Maju Jaya]`,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	presets, err := config.LoadPresets(cfg.ReportPresetsFile)
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No presets defined in %s\n", cfg.ReportPresetsFile)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSORT\tPERIOD\tSTATUS\tDESCRIPTION")
	for _, name := range presets.Names() {
		p := presets[name]
		if _, err := p.ToFilter(); err != nil {
			fmt.Fprintf(w, "%s\t(invalid: %v)\t\t\t\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, orDash(p.SortBy), period(p), orDash(p.Status), p.Description)
	}
	return w.Flush()
}

func period(p config.Preset) string {
	if p.Start == "" && p.End == "" {
		return "-"
	}
	return orDash(p.Start) + ".." + orDash(p.End)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

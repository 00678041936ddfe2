package cmd

import (
	"github.com/nfrund/gstportal/internal/config"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load .env and the environment the same way serve does, validate the result
and print every setting as a table. The session secret is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("KEY", "Description", "Value")
		for _, s := range cfg.Settings() {
			if err := table.Append([]string{s.Key, s.Description, s.Value}); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

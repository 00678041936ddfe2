package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/nfrund/gstportal/internal/portal"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var contentSection string

var contentSections = []string{"features", "activity", "actions"}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the dashboard content",
	Long: `Print the static records the dashboard renders, one table per section.

Examples:
  gst-portal content                      # all sections
  gst-portal content --section activity   # only the recent activity list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content := portal.DefaultDashboard()
		sections := map[string][]portal.Item{
			"features": content.Features,
			"activity": content.Activity,
			"actions":  content.QuickActions,
		}

		names := contentSections
		if contentSection != "" {
			name := strings.ToLower(contentSection)
			if _, ok := sections[name]; !ok {
				return fmt.Errorf("unknown section %q (valid: %s)", contentSection, strings.Join(contentSections, ", "))
			}
			names = []string{name}
		}

		out := cmd.OutOrStdout()
		caser := cases.Title(language.English)
		for i, name := range names {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", caser.String(name))
			if err := renderItems(out, caser, sections[name]); err != nil {
				return err
			}
		}
		return nil
	},
}

func renderItems(w io.Writer, caser cases.Caser, items []portal.Item) error {
	table := tablewriter.NewWriter(w)
	table.Header("Title", "Description", "When", "Action", "Tone")
	for _, it := range items {
		tone := "-"
		if it.Tone != "" {
			tone = caser.String(string(it.Tone))
		}
		if err := table.Append([]string{it.Title, dash(it.Description), dash(it.Timestamp), dash(it.Action), tone}); err != nil {
			return err
		}
	}
	return table.Render()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.Flags().StringVarP(&contentSection, "section", "s", "", "Only print one section (features, activity, actions)")
}

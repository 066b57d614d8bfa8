// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newConstantsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the well-known descriptors",
		Long: `List the descriptors of the primitive types and of the java.lang
classes the class-file format refers to directly.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.stdout
			fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
				tableHeaderStyle.Render("NAME"),
				tableHeaderStyle.Render("DESCRIPTOR"),
			))
			for _, nd := range descriptor.WellKnown() {
				fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
					tableCellStyle.Render(nd.Name),
					CmdStyle.Render(nd.Descriptor.String()),
				))
			}
			return nil
		},
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/spf13/cobra"
)

func newMethodCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "method <descriptor>",
		Short: "Break a method descriptor into its parts",
		Long: `Print the parameter types, the return type and the number of
local-variable slots the parameters occupy (excluding 'this').`,
		Example: `  jdesc method '(IJLjava/lang/String;)V'`,
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := descriptor.Descriptor(args[0])
			m, err := descriptor.ParseMethod(d)
			if err != nil {
				return descriptorFailure(err, "parse method", args[0])
			}
			slots, err := m.ParameterSlots()
			if err != nil {
				return descriptorFailure(err, "count parameter slots of", args[0])
			}

			app.logger.Debug("method", "descriptor", d, "params", len(m.Params), "slots", slots)

			w := app.stdout
			fmt.Fprintln(w, TitleStyle.Render(args[0]))
			if len(m.Params) == 0 {
				fmt.Fprintf(w, "  %s %s\n", reportKeyStyle.Render("parameters"), SubtitleStyle.Render("(none)"))
			}
			for i, p := range m.Params {
				tr := typeReport(p)
				fmt.Fprintf(w, "  %s %s %s\n", reportKeyStyle.Render(fmt.Sprintf("parameter %d", i)), CmdStyle.Render(tr.Descriptor), tr.Display)
			}
			ret := typeReport(m.Return)
			fmt.Fprintf(w, "  %s %s %s\n", reportKeyStyle.Render("return"), CmdStyle.Render(ret.Descriptor), ret.Display)
			fmt.Fprintf(w, "  %s %d\n", reportKeyStyle.Render("parameter slots"), slots)
			return nil
		},
	}
}

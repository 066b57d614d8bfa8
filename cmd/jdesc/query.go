// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/spf13/cobra"
)

// eachDescriptor runs fn over every argument and stops at the first failure.
func eachDescriptor(args []string, fn func(d descriptor.Descriptor) error) error {
	for _, arg := range args {
		if err := fn(descriptor.Descriptor(arg)); err != nil {
			return err
		}
	}
	return nil
}

func newRenderCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "render <descriptor>...",
		Short: "Render descriptors in Java source notation",
		Long: `Render descriptors the way Java source code spells them.

Field descriptors render as type names ("[I" becomes "int[]"), method
descriptors as "(params) => return".`,
		Example: `  jdesc render '[[Ljava/lang/String;'
  jdesc render '(ILjava/lang/Object;)V'`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachDescriptor(args, func(d descriptor.Descriptor) error {
				out, err := d.Render()
				if err != nil {
					return descriptorFailure(err, "render descriptor", d.String())
				}
				app.logger.Debug("render", "descriptor", d, "display", out)
				fmt.Fprintln(app.stdout, out)
				return nil
			})
		},
	}
}

func newSizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "size <descriptor>...",
		Short: "Print the stack-slot size of descriptors",
		Long: `Print how many operand-stack or local-variable slots a value of the
descriptor's type occupies: 0 for void, 2 for long and double, 1 otherwise.
Method descriptors have no size.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachDescriptor(args, func(d descriptor.Descriptor) error {
				size, err := d.Size()
				if err != nil {
					return descriptorFailure(err, "size descriptor", d.String())
				}
				app.logger.Debug("size", "descriptor", d, "size", size)
				fmt.Fprintln(app.stdout, size)
				return nil
			})
		},
	}
}

func newClassifyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <descriptor>...",
		Short: "Print the classification predicates of descriptors",
		Long: `Print every classification predicate of each descriptor. Predicates
never fail: a malformed descriptor is classified by its leading character.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, arg := range args {
				if i > 0 {
					fmt.Fprintln(app.stdout)
				}
				p := classify(descriptor.Descriptor(arg))
				fmt.Fprintln(app.stdout, TitleStyle.Render(arg))
				for _, row := range []struct {
					key   string
					value bool
				}{
					{"reference", p.Reference},
					{"class/interface", p.ClassOrInterface},
					{"array", p.Array},
					{"method", p.Method},
					{"primitive", p.Primitive},
					{"numeric", p.PrimitiveNumeric},
					{"size 1", p.Size1},
					{"size 2", p.Size2},
				} {
					fmt.Fprintf(app.stdout, "  %s %s\n", reportKeyStyle.Render(row.key), boolStyle(row.value))
				}
			}
			return nil
		},
	}
}

func newComponentCommand(app *App) *cobra.Command {
	var element bool

	cmd := &cobra.Command{
		Use:   "component <descriptor>...",
		Short: "Print the component type of array descriptors",
		Long: `Print the component type of each array descriptor by removing one
dimension ("[[I" becomes "[I"). With --element, remove every dimension.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachDescriptor(args, func(d descriptor.Descriptor) error {
				op, get := "get component of", d.ComponentDescriptor
				if element {
					op, get = "get element of", d.ElementDescriptor
				}
				out, err := get()
				if err != nil {
					return descriptorFailure(err, op, d.String())
				}
				app.logger.Debug("component", "descriptor", d, "result", out, "element", element)
				fmt.Fprintln(app.stdout, out)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&element, "element", "e", false, "strip every array dimension")

	return cmd
}

func newPackageCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "package <descriptor>...",
		Short: "Print the package of class descriptors",
		Long: `Print the dotted package name of each class or interface descriptor.
Classes without a package print "<default>".`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachDescriptor(args, func(d descriptor.Descriptor) error {
				pkg, err := d.PackageName()
				if err != nil {
					return descriptorFailure(err, "get package of", d.String())
				}
				app.logger.Debug("package", "descriptor", d, "package", pkg)
				fmt.Fprintln(app.stdout, pkg)
				return nil
			})
		},
	}
}

func newSamePackageCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "same-package <descriptor> <descriptor>",
		Short: "Report whether two class descriptors share a package",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			same, err := descriptor.AreInSamePackage(descriptor.Descriptor(args[0]), descriptor.Descriptor(args[1]))
			if err != nil {
				return descriptorFailure(err, "compare packages of", args[0]+" "+args[1])
			}
			fmt.Fprintln(app.stdout, strconv.FormatBool(same))
			return nil
		},
	}
}

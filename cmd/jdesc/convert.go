// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/spf13/cobra"
)

const (
	formClass      nameForm = "class"
	formInternal   nameForm = "internal"
	formDescriptor nameForm = "descriptor"
)

// ErrInvalidNameForm is returned when --from or --to names an unknown form.
var ErrInvalidNameForm = errors.New("invalid name form")

type (
	// nameForm is one of the textual representations of a type.
	nameForm string

	// InvalidNameFormError is returned when a nameForm value is not recognized.
	// It wraps ErrInvalidNameForm for errors.Is() compatibility.
	InvalidNameFormError struct {
		Value nameForm
	}
)

// Error implements the error interface.
func (e *InvalidNameFormError) Error() string {
	return fmt.Sprintf("invalid name form %q (valid: class, internal, descriptor)", e.Value)
}

// Unwrap returns ErrInvalidNameForm so callers can use errors.Is for programmatic detection.
func (e *InvalidNameFormError) Unwrap() error { return ErrInvalidNameForm }

// Validate returns an error if f is not a known form.
func (f nameForm) Validate() error {
	switch f {
	case formClass, formInternal, formDescriptor:
		return nil
	default:
		return &InvalidNameFormError{Value: f}
	}
}

// toDescriptor parses value written in form f.
func (f nameForm) toDescriptor(value string) (descriptor.Descriptor, error) {
	switch f {
	case formClass:
		return descriptor.FromClassName(value)
	case formInternal:
		return descriptor.FromInternalForm(value)
	default:
		d := descriptor.Descriptor(value)
		if err := d.Validate(); err != nil {
			return "", err
		}
		return d, nil
	}
}

// fromDescriptor writes d in form f.
func (f nameForm) fromDescriptor(d descriptor.Descriptor) (string, error) {
	switch f {
	case formClass:
		return d.ClassName()
	case formInternal:
		return d.InternalForm()
	default:
		return d.String(), nil
	}
}

func newConvertCommand(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert between class names, internal forms and descriptors",
		Long: `Convert type names between their representations:

  class       java.lang.String, int, [Ljava.lang.String;
  internal    java/lang/String, [Ljava/lang/String;
  descriptor  Ljava/lang/String;, I, [Ljava/lang/String;

Every conversion passes through the descriptor form.`,
		Example: `  jdesc convert java.util.Map
  jdesc convert --from internal --to class java/util/Map$Entry
  jdesc convert --from descriptor --to internal '[[I'`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := nameForm(from), nameForm(to)
			if err := errors.Join(src.Validate(), dst.Validate()); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}

			for _, arg := range args {
				d, err := src.toDescriptor(arg)
				if err != nil {
					return descriptorFailure(err, fmt.Sprintf("convert %s", src), arg)
				}
				out, err := dst.fromDescriptor(d)
				if err != nil {
					return descriptorFailure(err, fmt.Sprintf("convert to %s", dst), arg)
				}
				app.logger.Debug("convert", "from", src, "to", dst, "input", arg, "output", out)
				fmt.Fprintln(app.stdout, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", string(formClass), "input form (class, internal, descriptor)")
	cmd.Flags().StringVar(&to, "to", string(formDescriptor), "output form (class, internal, descriptor)")

	return cmd
}

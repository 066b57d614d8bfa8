// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/invowk/jdesc/internal/config"
	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/pelletier/go-toml/v2"
)

// Report kinds.
const (
	kindVoid      = "void"
	kindPrimitive = "primitive"
	kindClass     = "class"
	kindArray     = "array"
	kindMethod    = "method"
)

type (
	// Report is everything jdesc can derive from one descriptor. Fields that
	// do not apply to the descriptor's kind are left empty.
	Report struct {
		Descriptor   string        `json:"descriptor" toml:"descriptor"`
		Line         int           `json:"line,omitempty" toml:"line,omitempty"`
		Valid        bool          `json:"valid" toml:"valid"`
		Error        string        `json:"error,omitempty" toml:"error,omitempty"`
		ErrorKind    string        `json:"error_kind,omitempty" toml:"error_kind,omitempty"`
		Kind         string        `json:"kind,omitempty" toml:"kind,omitempty"`
		Display      string        `json:"display,omitempty" toml:"display,omitempty"`
		Size         *int          `json:"size,omitempty" toml:"size,omitempty"`
		ClassName    string        `json:"class_name,omitempty" toml:"class_name,omitempty"`
		InternalForm string        `json:"internal_form,omitempty" toml:"internal_form,omitempty"`
		Package      string        `json:"package,omitempty" toml:"package,omitempty"`
		Dimensions   int           `json:"dimensions,omitempty" toml:"dimensions,omitempty"`
		Component    string        `json:"component,omitempty" toml:"component,omitempty"`
		Element      string        `json:"element,omitempty" toml:"element,omitempty"`
		Method       *MethodReport `json:"method,omitempty" toml:"method,omitempty"`
		Predicates   Predicates    `json:"predicates" toml:"predicates"`

		err error
	}

	// MethodReport describes the parts of a method descriptor.
	MethodReport struct {
		Parameters     []TypeReport `json:"parameters" toml:"parameters"`
		Return         TypeReport   `json:"return" toml:"return"`
		ParameterSlots int          `json:"parameter_slots" toml:"parameter_slots"`
	}

	// TypeReport pairs a descriptor with its display form.
	TypeReport struct {
		Descriptor string `json:"descriptor" toml:"descriptor"`
		Display    string `json:"display" toml:"display"`
	}

	// Predicates holds the classification predicates of a descriptor.
	Predicates struct {
		Reference        bool `json:"reference" toml:"reference"`
		ClassOrInterface bool `json:"class_or_interface" toml:"class_or_interface"`
		Array            bool `json:"array" toml:"array"`
		Method           bool `json:"method" toml:"method"`
		Primitive        bool `json:"primitive" toml:"primitive"`
		PrimitiveNumeric bool `json:"primitive_numeric" toml:"primitive_numeric"`
		Size1            bool `json:"size1" toml:"size1"`
		Size2            bool `json:"size2" toml:"size2"`
	}

	// reportDocument is the TOML root: TOML has no top-level arrays.
	reportDocument struct {
		Reports []Report `toml:"report"`
	}
)

// Err returns the validation error of an invalid report.
func (r *Report) Err() error { return r.err }

// buildReport derives a Report from d. Invalid descriptors produce a report
// carrying the error and the predicates only.
func buildReport(d descriptor.Descriptor) Report {
	r := Report{
		Descriptor: string(d),
		Predicates: classify(d),
	}

	if err := d.Validate(); err != nil {
		r.err = err
		r.Error = err.Error()
		if kind, ok := descriptor.KindOf(err); ok {
			r.ErrorKind = kind.String()
		}
		return r
	}

	r.Valid = true
	r.Display, _ = d.Render()
	if size, err := d.Size(); err == nil {
		r.Size = &size
	}

	switch {
	case d.IsMethod():
		r.Kind = kindMethod
		r.Method = buildMethodReport(d)
		return r
	case d == descriptor.Void:
		r.Kind = kindVoid
	case d.IsPrimitive():
		r.Kind = kindPrimitive
	case d.IsArrayReference():
		r.Kind = kindArray
		r.Dimensions = d.ArrayDimensions()
		if c, err := d.ComponentDescriptor(); err == nil {
			r.Component = string(c)
		}
		if e, err := d.ElementDescriptor(); err == nil {
			r.Element = string(e)
		}
	case d.IsClassOrInterfaceReference():
		r.Kind = kindClass
		if p, err := d.PackageName(); err == nil {
			r.Package = p.String()
		}
	}

	r.ClassName, _ = d.ClassName()
	r.InternalForm, _ = d.InternalForm()
	return r
}

func buildMethodReport(d descriptor.Descriptor) *MethodReport {
	m, err := descriptor.ParseMethod(d)
	if err != nil {
		return nil
	}

	mr := &MethodReport{
		Parameters: make([]TypeReport, 0, len(m.Params)),
		Return:     typeReport(m.Return),
	}
	for _, p := range m.Params {
		mr.Parameters = append(mr.Parameters, typeReport(p))
	}
	mr.ParameterSlots, _ = m.ParameterSlots()
	return mr
}

func typeReport(d descriptor.Descriptor) TypeReport {
	display, _ := d.Render()
	return TypeReport{Descriptor: string(d), Display: display}
}

func classify(d descriptor.Descriptor) Predicates {
	return Predicates{
		Reference:        d.IsReference(),
		ClassOrInterface: d.IsClassOrInterfaceReference(),
		Array:            d.IsArrayReference(),
		Method:           d.IsMethod(),
		Primitive:        d.IsPrimitive(),
		PrimitiveNumeric: d.IsPrimitiveNumeric(),
		Size1:            d.HasSize1(),
		Size2:            d.HasSize2(),
	}
}

// writeReports encodes reports to w in the requested format.
func writeReports(w io.Writer, format config.OutputFormat, reports []Report) error {
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case config.OutputFormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(reportDocument{Reports: reports})
	default:
		for i := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeTextReport(w, &reports[i])
		}
		return nil
	}
}

func writeTextReport(w io.Writer, r *Report) {
	title := r.Descriptor
	if r.Line > 0 {
		title = fmt.Sprintf("%s %s", SubtitleStyle.Render(fmt.Sprintf("line %d:", r.Line)), title)
	}
	fmt.Fprintln(w, TitleStyle.Render(title))

	field := func(key, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(w, "  %s %s\n", reportKeyStyle.Render(key), value)
	}

	if !r.Valid {
		field("valid", ErrorStyle.Render("false"))
		field("error", r.Error)
		return
	}

	field("valid", SuccessStyle.Render("true"))
	field("kind", r.Kind)
	field("display", r.Display)
	if r.Size != nil {
		field("size", strconv.Itoa(*r.Size))
	} else {
		field("size", SubtitleStyle.Render("undefined"))
	}
	field("class name", r.ClassName)
	field("internal form", r.InternalForm)
	field("package", r.Package)
	if r.Dimensions > 0 {
		field("dimensions", strconv.Itoa(r.Dimensions))
	}
	field("component", r.Component)
	field("element", r.Element)

	if r.Method != nil {
		for i, p := range r.Method.Parameters {
			field(fmt.Sprintf("parameter %d", i), fmt.Sprintf("%s %s", CmdStyle.Render(p.Descriptor), p.Display))
		}
		field("return", fmt.Sprintf("%s %s", CmdStyle.Render(r.Method.Return.Descriptor), r.Method.Return.Display))
		field("parameter slots", strconv.Itoa(r.Method.ParameterSlots))
	}
}

// firstFailure returns the error of the first invalid report.
func firstFailure(reports []Report) (Report, bool) {
	for _, r := range reports {
		if !r.Valid {
			return r, true
		}
	}
	return Report{}, false
}

// SPDX-License-Identifier: MPL-2.0

package descriptor

import "fmt"

// Method is a method descriptor split into its parameter and return types.
type Method struct {
	Params []Descriptor
	Return Descriptor
}

// ParseMethod splits a method descriptor such as "(I[JLjava/lang/String;)V"
// into its parameter and return descriptors.
func ParseMethod(d Descriptor) (Method, error) {
	if !d.IsMethod() {
		return Method{}, &PreconditionError{Value: d, Operation: "parse method", Requirement: "a method descriptor"}
	}
	var m Method
	ret, err := scanMethod(string(d), nil, func(p Descriptor) {
		m.Params = append(m.Params, p)
	})
	if err != nil {
		return Method{}, err
	}
	m.Return = ret
	return m, nil
}

// ParameterSlots returns the number of local-variable slots the parameters
// occupy, not counting the receiver of an instance method.
func (m Method) ParameterSlots() (int, error) {
	total := 0
	for i, p := range m.Params {
		n, err := p.Size()
		if err != nil {
			return 0, fmt.Errorf("parameter %d: %w", i, err)
		}
		total += n
	}
	return total, nil
}

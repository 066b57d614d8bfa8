// SPDX-License-Identifier: MPL-2.0

package descriptor

import "strings"

// Size returns the number of operand-stack slots a value of type d
// occupies: 0 for void, 2 for long and double, 1 for every other primitive
// and every reference type. Method descriptors and malformed descriptors
// have no size.
func (d Descriptor) Size() (int, error) {
	if d == "" {
		return 0, &PreconditionError{Value: d, Operation: "size", Requirement: "a non-empty descriptor"}
	}
	switch {
	case d == Void:
		return 0, nil
	case d.HasSize1():
		return 1, nil
	case d.HasSize2():
		return 2, nil
	}
	return 0, &UndefinedSizeError{Value: d}
}

// HasSize1 reports whether d occupies exactly one slot.
func (d Descriptor) HasSize1() bool {
	if len(d) == 1 {
		return strings.IndexByte("BCFISZ", d[0]) != -1
	}
	if !d.IsClassOrInterfaceReference() && !d.IsArrayReference() {
		return false
	}
	return validateField(string(d)) == nil
}

// HasSize2 reports whether d is long or double.
func (d Descriptor) HasSize2() bool { return d == Long || d == Double }

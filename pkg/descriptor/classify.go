// SPDX-License-Identifier: MPL-2.0

package descriptor

import "strings"

// IsReference reports whether d denotes a reference type. Every primitive
// descriptor is exactly one character, so any longer descriptor is an array
// or class type.
func (d Descriptor) IsReference() bool { return len(d) > 1 }

// IsClassOrInterfaceReference reports whether d has the form "L...;".
func (d Descriptor) IsClassOrInterfaceReference() bool { return len(d) > 0 && d[0] == 'L' }

// IsArrayReference reports whether d is an array descriptor.
func (d Descriptor) IsArrayReference() bool { return len(d) > 0 && d[0] == '[' }

// IsMethod reports whether d is a method descriptor.
func (d Descriptor) IsMethod() bool { return len(d) > 0 && d[0] == '(' }

// IsPrimitive reports whether d is one of the eight primitive descriptors or
// void.
func (d Descriptor) IsPrimitive() bool {
	return len(d) == 1 && strings.IndexByte("VBCDFIJSZ", d[0]) != -1
}

// IsPrimitiveNumeric reports whether d is a numeric primitive. char counts as
// numeric; boolean and void do not.
func (d Descriptor) IsPrimitiveNumeric() bool {
	return len(d) == 1 && strings.IndexByte("BDFIJSC", d[0]) != -1
}

// ArrayDimensions returns the number of leading '[' characters.
func (d Descriptor) ArrayDimensions() int {
	n := 0
	for n < len(d) && d[n] == '[' {
		n++
	}
	return n
}

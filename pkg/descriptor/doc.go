// SPDX-License-Identifier: MPL-2.0

// Package descriptor implements the class-file descriptor codec: the compact
// textual encoding used to name field types ("I", "[J", "Ljava/lang/String;")
// and method signatures ("(ILjava/lang/Object;)V").
//
// The package converts between four representations of a type:
//
//   - descriptor form:  "Ljava/lang/String;", "[I", "J"
//   - internal form:    "java/lang/String" (arrays keep their descriptor form)
//   - class name form:  "java.lang.String", "int", "[Ljava.lang.String;"
//   - display form:     "java.lang.String[]", "(int, int) => void"
//
// Every operation is a pure function over an immutable Descriptor value and
// is safe for concurrent use. Failures are reported as one of three tagged
// errors (ErrMalformedDescriptor, ErrPreconditionViolation, ErrUndefinedSize)
// that carry the offending input.
//
// This package is a leaf dependency: it imports only the standard library.
package descriptor

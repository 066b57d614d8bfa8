// SPDX-License-Identifier: MPL-2.0

package descriptor

import "strings"

// FromClassName converts a class name as reported by reflection-style APIs
// into a descriptor:
//
//	int                  -> I
//	java.lang.String     -> Ljava/lang/String;
//	[Ljava.lang.String;  -> [Ljava/lang/String;
func FromClassName(name string) (Descriptor, error) {
	if name == "" {
		return "", &PreconditionError{Value: "", Operation: "convert class name", Requirement: "a non-empty class name"}
	}
	if d, ok := Primitive(name); ok {
		return d, nil
	}
	if name[0] == '[' {
		d := strings.ReplaceAll(name, ".", "/")
		if err := validateField(d); err != nil {
			return "", err
		}
		return Descriptor(d), nil
	}
	if strings.ContainsAny(name, "/;[") {
		return "", &PreconditionError{Value: Descriptor(name), Operation: "convert class name", Requirement: "a dotted class name"}
	}
	path := strings.ReplaceAll(name, ".", "/")
	if checkClassPath(path) != "" {
		return "", &PreconditionError{Value: Descriptor(name), Operation: "convert class name", Requirement: "a dotted class name"}
	}
	return Descriptor("L" + path + ";"), nil
}

// FromInternalForm converts an internal-form class name ("java/lang/String")
// into a descriptor. Array types have no separate internal form, so a
// '['-prefixed argument is returned unchanged.
func FromInternalForm(internal string) (Descriptor, error) {
	if internal == "" {
		return "", &PreconditionError{Value: "", Operation: "convert internal form", Requirement: "a non-empty internal name"}
	}
	if internal[0] == '[' {
		if err := validateField(internal); err != nil {
			return "", err
		}
		return Descriptor(internal), nil
	}
	if checkClassPath(internal) != "" {
		return "", &PreconditionError{Value: Descriptor(internal), Operation: "convert internal form", Requirement: "a slash-separated class path"}
	}
	return Descriptor("L" + internal + ";"), nil
}

// ClassName converts a field descriptor into its class name. It is the
// inverse of FromClassName; array descriptors keep their shape and only swap
// '/' for '.'.
func (d Descriptor) ClassName() (string, error) {
	switch {
	case len(d) == 1:
		if keyword, ok := keywordFor(d[0]); ok {
			return keyword, nil
		}
	case d.IsClassOrInterfaceReference() && strings.HasSuffix(string(d), ";"):
		if err := validateField(string(d)); err != nil {
			return "", err
		}
		return dotted(string(d[1 : len(d)-1])), nil
	case d.IsArrayReference():
		if err := validateField(string(d)); err != nil {
			return "", err
		}
		return dotted(string(d)), nil
	}
	return "", &PreconditionError{Value: d, Operation: "convert to class name", Requirement: "a field descriptor"}
}

// InternalForm strips the "L" and ";" wrapper from a class or interface
// descriptor. Primitives and arrays have no internal form.
func (d Descriptor) InternalForm() (string, error) {
	if !d.IsClassOrInterfaceReference() {
		return "", &PreconditionError{Value: d, Operation: "convert to internal form", Requirement: "a class or interface descriptor"}
	}
	if err := validateField(string(d)); err != nil {
		return "", err
	}
	return string(d[1 : len(d)-1]), nil
}

// ComponentDescriptor removes exactly one array dimension from d.
func (d Descriptor) ComponentDescriptor() (Descriptor, error) {
	if !d.IsArrayReference() {
		return "", &PreconditionError{Value: d, Operation: "get component of", Requirement: "an array descriptor"}
	}
	if err := validateField(string(d)); err != nil {
		return "", err
	}
	return d[1:], nil
}

// ElementDescriptor removes every array dimension from d.
func (d Descriptor) ElementDescriptor() (Descriptor, error) {
	if !d.IsArrayReference() {
		return "", &PreconditionError{Value: d, Operation: "get element of", Requirement: "an array descriptor"}
	}
	if err := validateField(string(d)); err != nil {
		return "", err
	}
	return d[d.ArrayDimensions():], nil
}

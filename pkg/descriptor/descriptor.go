// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"slices"
	"strings"
)

// Primitive and void descriptors.
const (
	Void    Descriptor = "V"
	Byte    Descriptor = "B"
	Char    Descriptor = "C"
	Double  Descriptor = "D"
	Float   Descriptor = "F"
	Int     Descriptor = "I"
	Long    Descriptor = "J"
	Short   Descriptor = "S"
	Boolean Descriptor = "Z"
)

// Well-known reference descriptors.
const (
	Object           Descriptor = "Ljava/lang/Object;"
	String           Descriptor = "Ljava/lang/String;"
	StringBuffer     Descriptor = "Ljava/lang/StringBuffer;"
	StringBuilder    Descriptor = "Ljava/lang/StringBuilder;"
	Class            Descriptor = "Ljava/lang/Class;"
	Throwable        Descriptor = "Ljava/lang/Throwable;"
	RuntimeException Descriptor = "Ljava/lang/RuntimeException;"
	Error            Descriptor = "Ljava/lang/Error;"
	Cloneable        Descriptor = "Ljava/lang/Cloneable;"
	Serializable     Descriptor = "Ljava/io/Serializable;"

	BoxedBoolean   Descriptor = "Ljava/lang/Boolean;"
	BoxedByte      Descriptor = "Ljava/lang/Byte;"
	BoxedCharacter Descriptor = "Ljava/lang/Character;"
	BoxedShort     Descriptor = "Ljava/lang/Short;"
	BoxedInteger   Descriptor = "Ljava/lang/Integer;"
	BoxedLong      Descriptor = "Ljava/lang/Long;"
	BoxedFloat     Descriptor = "Ljava/lang/Float;"
	BoxedDouble    Descriptor = "Ljava/lang/Double;"
)

type (
	// Descriptor is a field descriptor ("I", "[J", "Ljava/lang/String;") or a
	// method descriptor ("(IJ)V"). A valid descriptor is never empty.
	Descriptor string

	// NamedDescriptor pairs a well-known descriptor with its class name.
	NamedDescriptor struct {
		Name       string
		Descriptor Descriptor
	}

	primitiveEntry struct {
		tag     byte
		keyword string
	}
)

// primitives is ordered by tag as the class-file format lists them.
var primitives = [...]primitiveEntry{
	{'V', "void"},
	{'B', "byte"},
	{'C', "char"},
	{'D', "double"},
	{'F', "float"},
	{'I', "int"},
	{'J', "long"},
	{'S', "short"},
	{'Z', "boolean"},
}

var wellKnown = []NamedDescriptor{
	{"void", Void},
	{"byte", Byte},
	{"char", Char},
	{"double", Double},
	{"float", Float},
	{"int", Int},
	{"long", Long},
	{"short", Short},
	{"boolean", Boolean},
	{"java.lang.Object", Object},
	{"java.lang.String", String},
	{"java.lang.StringBuffer", StringBuffer},
	{"java.lang.StringBuilder", StringBuilder},
	{"java.lang.Class", Class},
	{"java.lang.Throwable", Throwable},
	{"java.lang.RuntimeException", RuntimeException},
	{"java.lang.Error", Error},
	{"java.lang.Cloneable", Cloneable},
	{"java.io.Serializable", Serializable},
	{"java.lang.Boolean", BoxedBoolean},
	{"java.lang.Byte", BoxedByte},
	{"java.lang.Character", BoxedCharacter},
	{"java.lang.Short", BoxedShort},
	{"java.lang.Integer", BoxedInteger},
	{"java.lang.Long", BoxedLong},
	{"java.lang.Float", BoxedFloat},
	{"java.lang.Double", BoxedDouble},
}

// String returns the raw descriptor text.
func (d Descriptor) String() string { return string(d) }

// Validate returns a *MalformedDescriptorError if d is neither a complete
// field descriptor nor a complete method descriptor.
func (d Descriptor) Validate() error {
	if d == "" {
		return &PreconditionError{Value: d, Operation: "validate", Requirement: "a non-empty descriptor"}
	}
	if d.IsMethod() {
		_, err := scanMethod(string(d), nil, nil)
		return err
	}
	return validateField(string(d))
}

// Primitive returns the descriptor for a primitive keyword such as "int" or
// "void".
func Primitive(keyword string) (Descriptor, bool) {
	for _, p := range primitives {
		if p.keyword == keyword {
			return Descriptor([]byte{p.tag}), true
		}
	}
	return "", false
}

// Keyword returns the primitive keyword ("int", "void", ...) for a one
// character primitive descriptor.
func (d Descriptor) Keyword() (string, bool) {
	if len(d) != 1 {
		return "", false
	}
	return keywordFor(d[0])
}

// WellKnown returns a copy of the well-known descriptor table.
func WellKnown() []NamedDescriptor {
	return slices.Clone(wellKnown)
}

// LookupWellKnown finds a well-known descriptor by class name
// ("java.lang.String") or primitive keyword ("int").
func LookupWellKnown(name string) (Descriptor, bool) {
	for _, nd := range wellKnown {
		if nd.Name == name {
			return nd.Descriptor, true
		}
	}
	return "", false
}

func keywordFor(tag byte) (string, bool) {
	for _, p := range primitives {
		if p.tag == tag {
			return p.keyword, true
		}
	}
	return "", false
}

// dotted converts a slash-separated class path to its dotted form.
func dotted(path string) string { return strings.ReplaceAll(path, "/", ".") }

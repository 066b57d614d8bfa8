// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"fmt"
	"strings"
)

// Render returns the human-readable form of d:
//
//	I                      -> int
//	[[Ljava/lang/String;   -> java.lang.String[][]
//	(ILjava/util/List;)V   -> (int, java.util.List) => void
func (d Descriptor) Render() (string, error) {
	if d == "" {
		return "", &PreconditionError{Value: d, Operation: "render", Requirement: "a non-empty descriptor"}
	}
	var sb strings.Builder
	s := string(d)
	if d.IsMethod() {
		if _, err := scanMethod(s, &sb, nil); err != nil {
			return "", err
		}
		return sb.String(), nil
	}
	end, err := scanField(s, 0, &sb)
	if err != nil {
		return "", err
	}
	if end != len(s) {
		return "", malformed(s, end, "unexpected trailing characters")
	}
	return sb.String(), nil
}

// scanField consumes one field descriptor of d starting at pos, writing its
// display form to sb when sb is non-nil. It returns the position just past
// the consumed type. void is accepted anywhere except as an array component.
func scanField(d string, pos int, sb *strings.Builder) (int, error) {
	dims := 0
	for pos < len(d) && d[pos] == '[' {
		dims++
		pos++
	}
	if pos >= len(d) {
		return pos, malformed(d, pos, "unexpected end of descriptor")
	}

	switch tag := d[pos]; tag {
	case 'L':
		end := strings.IndexByte(d[pos:], ';')
		if end == -1 {
			return pos, malformed(d, pos, "class type is missing terminating ';'")
		}
		end += pos
		path := d[pos+1 : end]
		if reason := checkClassPath(path); reason != "" {
			return pos, malformed(d, pos+1, reason)
		}
		emit(sb, dotted(path))
		pos = end
	default:
		keyword, ok := keywordFor(tag)
		if !ok {
			return pos, malformed(d, pos, fmt.Sprintf("unrecognized type tag %q", tag))
		}
		if tag == 'V' && dims > 0 {
			return pos, malformed(d, pos, "void is not a valid array component type")
		}
		emit(sb, keyword)
	}

	for ; dims > 0; dims-- {
		emit(sb, "[]")
	}
	return pos + 1, nil
}

// scanMethod consumes a complete method descriptor, calling onParam for each
// parameter descriptor in order, and returns the return-type descriptor.
func scanMethod(d string, sb *strings.Builder, onParam func(Descriptor)) (Descriptor, error) {
	pos := 1
	emit(sb, "(")
	for pos < len(d) && d[pos] != ')' {
		if pos != 1 {
			emit(sb, ", ")
		}
		end, err := scanField(d, pos, sb)
		if err != nil {
			return "", err
		}
		if onParam != nil {
			onParam(Descriptor(d[pos:end]))
		}
		pos = end
	}
	if pos >= len(d) {
		return "", malformed(d, pos, "parameter list is missing closing ')'")
	}
	emit(sb, ") => ")
	pos++

	end, err := scanField(d, pos, sb)
	if err != nil {
		return "", err
	}
	if end != len(d) {
		return "", malformed(d, end, "unexpected trailing characters")
	}
	return Descriptor(d[pos:end]), nil
}

// validateField reports whether d is exactly one field descriptor. void is
// accepted as a field descriptor on its own.
func validateField(d string) error {
	if d == "" {
		return &PreconditionError{Value: Descriptor(d), Operation: "validate", Requirement: "a non-empty descriptor"}
	}
	end, err := scanField(d, 0, nil)
	if err != nil {
		return err
	}
	if end != len(d) {
		return malformed(d, end, "unexpected trailing characters")
	}
	return nil
}

// checkClassPath returns a non-empty reason when path is not a valid
// slash-separated class path.
func checkClassPath(path string) string {
	if path == "" {
		return "empty class name"
	}
	if i := strings.IndexAny(path, ".;["); i != -1 {
		return fmt.Sprintf("class name contains illegal character %q", path[i])
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return "class name has an empty path segment"
		}
	}
	return ""
}

func emit(sb *strings.Builder, s string) {
	if sb != nil {
		sb.WriteString(s)
	}
}

// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"errors"
	"testing"
)

func TestDescriptor_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Descriptor
		want string
	}{
		{"I", "int"},
		{"V", "void"},
		{"Z", "boolean"},
		{"[I", "int[]"},
		{"[[Ljava/lang/String;", "java.lang.String[][]"},
		{"LFoo;", "Foo"},
		{"Ljava/util/Map$Entry;", "java.util.Map$Entry"},
		{"(II)V", "(int, int) => void"},
		{"()V", "() => void"},
		{"([Ljava/lang/String;)V", "(java.lang.String[]) => void"},
		{"(IJLjava/lang/Object;[[D)Ljava/lang/String;", "(int, long, java.lang.Object, double[][]) => java.lang.String"},
		{"()[B", "() => byte[]"},
		{"(V)V", "(void) => void"},
		{"(IV[Z)J", "(int, void, boolean[]) => long"},
	}

	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			t.Parallel()
			got, err := tt.d.Render()
			if err != nil {
				t.Fatalf("Descriptor(%q).Render() unexpected error: %v", tt.d, err)
			}
			if got != tt.want {
				t.Errorf("Descriptor(%q).Render() = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestDescriptor_Render_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		d      Descriptor
		offset int
	}{
		{"unterminated class", "L", 0},
		{"unterminated class path", "Ljava/lang/String", 0},
		{"unterminated method", "(I", 2},
		{"unterminated method empty", "(", 1},
		{"missing return type", "(I)", 3},
		{"unknown tag", "X", 0},
		{"unknown tag in params", "(IQ)V", 2},
		{"bare array", "[", 1},
		{"void array", "[V", 1},
		{"void array parameter", "([V)V", 2},
		{"empty class name", "L;", 1},
		{"dotted class name", "Ljava.lang.String;", 1},
		{"empty segment", "Ljava//String;", 1},
		{"trailing characters", "II", 1},
		{"trailing after return", "()VI", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.d.Render()
			if !errors.Is(err, ErrMalformedDescriptor) {
				t.Fatalf("Descriptor(%q).Render() error = %v, want ErrMalformedDescriptor", tt.d, err)
			}
			var mdErr *MalformedDescriptorError
			if !errors.As(err, &mdErr) {
				t.Fatalf("error should be *MalformedDescriptorError, got: %T", err)
			}
			if mdErr.Value != tt.d {
				t.Errorf("MalformedDescriptorError.Value = %q, want the full descriptor %q", mdErr.Value, tt.d)
			}
			if mdErr.Offset != tt.offset {
				t.Errorf("MalformedDescriptorError.Offset = %d, want %d", mdErr.Offset, tt.offset)
			}
		})
	}
}

func TestDescriptor_Render_Empty(t *testing.T) {
	t.Parallel()

	_, err := Descriptor("").Render()
	if !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("Render() of empty descriptor error = %v, want ErrPreconditionViolation", err)
	}
}

func TestDescriptor_Validate(t *testing.T) {
	t.Parallel()

	for _, d := range []Descriptor{"I", "V", "[J", "Ljava/lang/Object;", "(I[JLFoo;)V", "()Z"} {
		if err := d.Validate(); err != nil {
			t.Errorf("Descriptor(%q).Validate() unexpected error: %v", d, err)
		}
	}
	for _, d := range []Descriptor{"L", "(I", "Q", "[V", "Lfoo;x"} {
		if err := d.Validate(); !errors.Is(err, ErrMalformedDescriptor) {
			t.Errorf("Descriptor(%q).Validate() error = %v, want ErrMalformedDescriptor", d, err)
		}
	}
}

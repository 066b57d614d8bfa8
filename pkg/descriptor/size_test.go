// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"errors"
	"testing"
)

func TestDescriptor_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Descriptor
		want int
	}{
		{Void, 0},
		{Long, 2},
		{Double, 2},
		{Int, 1},
		{Byte, 1},
		{Char, 1},
		{Float, 1},
		{Short, 1},
		{Boolean, 1},
		{Object, 1},
		{"[I", 1},
		{"[[Ljava/lang/String;", 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			t.Parallel()
			got, err := tt.d.Size()
			if err != nil {
				t.Fatalf("Descriptor(%q).Size() unexpected error: %v", tt.d, err)
			}
			if got != tt.want {
				t.Errorf("Descriptor(%q).Size() = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}

func TestDescriptor_Size_Undefined(t *testing.T) {
	t.Parallel()

	for _, d := range []Descriptor{"(II)V", "X", "Ljava/lang/String", "[V", "II"} {
		_, err := d.Size()
		if !errors.Is(err, ErrUndefinedSize) {
			t.Errorf("Descriptor(%q).Size() error = %v, want ErrUndefinedSize", d, err)
			continue
		}
		var sizeErr *UndefinedSizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("error should be *UndefinedSizeError, got: %T", err)
		}
		if sizeErr.Value != d {
			t.Errorf("UndefinedSizeError.Value = %q, want %q", sizeErr.Value, d)
		}
		if kind, ok := KindOf(err); !ok || kind != KindUndefinedSize {
			t.Errorf("KindOf(%v) = %v, %v; want %v", err, kind, ok, KindUndefinedSize)
		}
	}
}

func TestDescriptor_Size_Empty(t *testing.T) {
	t.Parallel()

	_, err := Descriptor("").Size()
	if !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("Size() of empty descriptor error = %v, want ErrPreconditionViolation", err)
	}
}

func TestUndefinedSizeError_MessageIncludesDisplayForm(t *testing.T) {
	t.Parallel()

	err := &UndefinedSizeError{Value: "(I)V"}
	want := `no size defined for type "(I)V" ((int) => void)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

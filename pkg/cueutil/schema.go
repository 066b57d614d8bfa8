// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// MaxFileSize is the largest document Schema.Decode accepts.
const MaxFileSize int64 = 1 << 20

// Schema is a single definition of a compiled CUE schema. A Schema is not
// safe for concurrent use; compile one per load.
type Schema struct {
	def cue.Value
}

// CompileSchema compiles src and selects the definition named def, e.g.
// "#Config".
func CompileSchema(src, def string) (*Schema, error) {
	root := cuecontext.New().CompileString(src)
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}
	v := root.LookupPath(cue.ParsePath(def))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", def, err)
	}
	return &Schema{def: v}, nil
}

// Decode unifies the document data, read from filename, with the schema and
// decodes the result into target. Optional fields may be left unset.
func (s *Schema) Decode(filename string, data []byte, target any) error {
	if err := checkFileSize(data, MaxFileSize, filename); err != nil {
		return err
	}

	doc := s.def.Context().CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return FormatError(err, filename)
	}

	unified := s.def.Unify(doc)
	if err := unified.Validate(); err != nil {
		return FormatError(err, filename)
	}
	if err := unified.Decode(target); err != nil {
		return FormatError(err, filename)
	}
	return nil
}

func checkFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}

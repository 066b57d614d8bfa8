// SPDX-License-Identifier: MPL-2.0

// Package cueutil checks CUE documents against an embedded schema
// definition and decodes them into Go values.
//
// Errors are reported with JSON-path style locations ("output.format") so a
// user can find the offending field quickly.
//
//	schema, err := cueutil.CompileSchema(configSchema, "#Config")
//	...
//	var doc map[string]any
//	err = schema.Decode(path, data, &doc)
package cueutil

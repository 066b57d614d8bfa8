// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Codec failures are wrapped in ActionableError values that name the
// operation, the offending input and suggestions for fixing it. Each codec
// error kind also has a Markdown help page in the catalog, rendered for the
// terminal with glamour.
package issue

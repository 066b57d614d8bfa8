// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for jdesc.
//
// This package implements the Cobra command hierarchy for the jdesc CLI:
// single-purpose queries over JVM type descriptors (render, size, classify,
// convert, component, package, method), the full inspect report with its
// text, JSON and TOML encodings, line-oriented batch processing, and
// configuration management.
package cmd

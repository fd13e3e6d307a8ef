// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for devc.
//
// This package implements the Cobra command hierarchy: the root command,
// alias management, the hidden completion query endpoint, completion script
// generation, and grammar/config inspection. Command handlers delegate
// through the App composition root so tests can inject fakes.
package cmd

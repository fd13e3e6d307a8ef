// SPDX-License-Identifier: EPL-2.0

// Package issue provides user-facing error context: ActionableError for
// operation/resource/suggestion framing, and a catalog of documented
// failure conditions rendered as markdown in verbose output.
package issue

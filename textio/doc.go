// SPDX-License-Identifier: MIT

// Package textio moves matrix.Dense values across a plain-text boundary.
//
// Format:
//
//	One line per row, elements separated by a tab and printed with %v, each line
//	terminated by '\n'. Reading is more lenient: rows are split on any run of
//	whitespace and blank (or whitespace-only) lines are ignored.
//
// Errors:
//
//	Malformed input is a recoverable condition, reported through ErrEmptyInput,
//	ErrParse and ErrRaggedRows (all usable with errors.Is). I/O errors are returned
//	as-is, wrapped with the operation name.
package textio

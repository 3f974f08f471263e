// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides a buffered writer for nested text
// that tracks the current indentation level.
package indent

import (
	"bufio"
	"io"
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return strings.Repeat("\t", n)
	}
	return strings.Repeat(" ", n*width)
}

// Writer is a buffered writer that starts new lines at the current
// indentation level. Write errors are sticky and returned by [Writer.Flush].
type Writer struct {
	w *bufio.Writer

	// Char is the indentation character.
	Char Character

	// Width is the number of spaces per level for [Space].
	Width int

	// Level is the current indentation level.
	Level int
}

// NewWriter returns a new [Writer] on w indenting with width spaces per level.
func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{w: bufio.NewWriter(w), Char: Space, Width: width}
}

// WriteString writes s as is.
func (w *Writer) WriteString(s string) (int, error) {
	return w.w.WriteString(s)
}

func (w *Writer) Write(b []byte) (int, error) {
	return w.w.Write(b)
}

// Indent writes the indentation of the current level.
func (w *Writer) Indent() {
	w.w.WriteString(String(w.Char, w.Level, w.Width))
}

// Line ends the current line and indents the next one.
func (w *Writer) Line() {
	w.w.WriteByte('\n')
	w.Indent()
}

// In increments the indentation level.
func (w *Writer) In() { w.Level++ }

// Out decrements the indentation level.
func (w *Writer) Out() {
	if w.Level > 0 {
		w.Level--
	}
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package diagfmt formats transform diagnostics for humans.
package diagfmt

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/aftertest/transform"
)

// tabWidth is the display width of a tab in source excerpts.
const tabWidth = 4

// Options configures a [Printer].
type Options struct {
	Color   bool // colorize output
	Context bool // show the source line with a marker under the diagnostic
	Width   int  // maximum width of source excerpts, 0 is unlimited
}

// Printer writes diagnostics in the form
//
//	file:line:col: error: message (at:kind)
//
// optionally followed by the offending source line and a help line.
type Printer struct {
	w    io.Writer
	opts Options

	location, severity, marker, help *color.Color
}

// NewPrinter returns a [Printer] writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	p := &Printer{
		w:        w,
		opts:     opts,
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		marker:   color.New(color.FgGreen, color.Bold),
		help:     color.New(color.FgCyan),
	}

	for _, c := range [...]*color.Color{p.location, p.severity, p.marker, p.help} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes the diagnostics of one file. src is the original source the positions refer to.
func (p *Printer) Print(fset *token.FileSet, filename string, src []byte, ds []transform.Diagnostic) error {
	var buf bytes.Buffer

	for _, d := range ds {
		p.format(&buf, fset, filename, src, d)
	}

	_, err := p.w.Write(buf.Bytes())

	return err
}

func (p *Printer) format(buf *bytes.Buffer, fset *token.FileSet, filename string, src []byte, d transform.Diagnostic) {
	loc := filename

	var pos, end token.Position
	if d.Pos.IsValid() {
		pos = fset.PositionFor(d.Pos, false)
		loc += ":" + strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Column)
	}

	if d.End.IsValid() {
		end = fset.PositionFor(d.End, false)
	}

	fmt.Fprintf(buf, "%s: %s %s\n", p.location.Sprint(loc), p.severity.Sprint("error:"), d.String())

	if p.opts.Context && pos.IsValid() {
		p.excerpt(buf, src, pos, end)
	}

	if d.Help != "" {
		fmt.Fprintf(buf, "  %s %s\n", p.help.Sprint("help:"), d.Help)
	}
}

// excerpt writes the source line of pos with a marker under the range [pos, end).
func (p *Printer) excerpt(buf *bytes.Buffer, src []byte, pos, end token.Position) {
	start := pos.Offset - (pos.Column - 1)
	if start < 0 || pos.Offset > len(src) {
		return
	}

	line := src[start:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	text := expandTabs(string(bytes.TrimRight(line, "\r")))
	before := runewidth.StringWidth(expandTabs(string(src[start:pos.Offset])))

	width := 1
	if end.IsValid() && end.Line == pos.Line && end.Offset > pos.Offset && end.Offset <= start+len(line) {
		width = runewidth.StringWidth(expandTabs(string(src[start:end.Offset]))) - before
	}

	if p.opts.Width > 0 && runewidth.StringWidth(text) > p.opts.Width {
		text = runewidth.Truncate(text, p.opts.Width, "...")
	}

	gutter := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(buf, " %s | %s\n", gutter, text)
	fmt.Fprintf(buf, " %s | %s%s\n", pad, strings.Repeat(" ", before),
		p.marker.Sprint("^"+strings.Repeat("~", max(width-1, 0))))
}

// expandTabs replaces tabs with spaces, keeping tab stops.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder

	col := 0

	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n)) // ignore error
			col += n

			continue
		}

		b.WriteRune(r) // ignore error
		col += runewidth.RuneWidth(r)
	}

	return b.String()
}

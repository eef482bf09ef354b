// Package diag renders validation failures as annotated source excerpts.
//
// The output follows the familiar compiler shape: an error header, the
// source location, the offending line with an underline, and optionally a
// secondary annotation pointing at related text such as an earlier
// conflicting definition.
package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Renderer implements ports.DiagRenderer on a terminal writer.
type Renderer struct {
	out io.Writer
}

var _ ports.DiagRenderer = (*Renderer)(nil)

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render prints the diagnostic for err. When source is nil the
// configuration file is re-read from path; if that fails only the bare
// message is printed.
func (r *Renderer) Render(path string, source []byte, err *domain.Error) {
	header := color.New(color.FgRed, color.Bold).SprintFunc()
	message := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(r.out, "%s %s\n", header("error:"), message(err.Message))

	if err.Span == nil {
		return
	}
	if source == nil {
		data, readErr := os.ReadFile(path) //nolint:gosec // path is provided by user
		if readErr != nil {
			return
		}
		source = data
	}

	primaryLine, primaryCol := position(source, err.Span.Start)
	width := numberWidth(primaryLine)
	if err.Secondary != nil {
		secondaryLine, _ := position(source, err.Secondary.Span.Start)
		width = max(width, numberWidth(secondaryLine))
	}
	pad := strings.Repeat(" ", width)

	gutter := color.New(color.FgBlue, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "%s %s\n", gutter(pad+"-->"), fmt.Sprintf("%s:%d:%d", path, primaryLine, primaryCol))
	fmt.Fprintf(r.out, "%s\n", gutter(pad+" |"))

	primary := color.New(color.FgRed, color.Bold).SprintFunc()
	r.label(source, *err.Span, width, '^', "", primary)

	if err.Secondary != nil {
		secondary := color.New(color.FgBlue).SprintFunc()
		fmt.Fprintf(r.out, "%s\n", gutter(pad+" |"))
		r.label(source, err.Secondary.Span, width, '-', err.Secondary.Message, secondary)
	}
}

// label prints one annotated source line: the numbered line itself and a
// marker line underlining the span.
func (r *Renderer) label(source []byte, span domain.Span, width int, marker rune, msg string, paint func(...any) string) {
	gutter := color.New(color.FgBlue, color.Bold).SprintFunc()

	line, col := position(source, span.Start)
	start, end := lineExtent(source, span.Start)
	text := strings.TrimSuffix(string(source[start:end]), "\r")

	length := span.End - span.Start
	if span.Start+length > end {
		length = end - span.Start
	}
	if length < 1 {
		length = 1
	}

	number := fmt.Sprintf("%*d |", width, line)
	fmt.Fprintf(r.out, "%s %s\n", gutter(number), text)

	underline := strings.Repeat(" ", col-1) + strings.Repeat(string(marker), length)
	if msg != "" {
		underline += " " + msg
	}
	pad := strings.Repeat(" ", width)
	fmt.Fprintf(r.out, "%s %s\n", gutter(pad+" |"), paint(underline))
}

// position converts a byte offset into a 1-based line and column pair.
func position(source []byte, offset int) (line, col int) {
	if offset > len(source) {
		offset = len(source)
	}
	line = 1 + bytes.Count(source[:offset], []byte{'\n'})
	col = offset - bytes.LastIndexByte(source[:offset], '\n')
	return line, col
}

// lineExtent returns the bounds of the line containing offset, excluding
// the trailing newline.
func lineExtent(source []byte, offset int) (int, int) {
	if offset > len(source) {
		offset = len(source)
	}
	start := bytes.LastIndexByte(source[:offset], '\n') + 1
	end := bytes.IndexByte(source[offset:], '\n')
	if end < 0 {
		end = len(source)
	} else {
		end += offset
	}
	return start, end
}

func numberWidth(line int) int {
	return len(strconv.Itoa(line))
}

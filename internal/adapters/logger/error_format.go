package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error. If zerr's
// API changes, errors gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, matching
// zerr.Error's Metadata() accessor.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one link of an error chain: its message and any structured
// metadata attached at that level.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain and produces one entry per
// level. zerr errors contribute their bare message and metadata; the first
// non-zerr error contributes its full Error() text and ends the walk.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error()})
			break
		}

		entry := errorEntry{Message: m.Message()}
		if md, hasMetadata := current.(metadataer); hasMetadata {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders collected entries hierarchically: the main
// error first, then its causes indented under a "Caused by:" header.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

// metadataLines renders metadata as "key: value" lines with stable ordering.
func metadataLines(md map[string]any, indent string) []string {
	if len(md) == 0 {
		return nil
	}
	lines := make([]string, 0, len(md))
	for _, key := range slices.Sorted(maps.Keys(md)) {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, md[key]))
	}
	return lines
}

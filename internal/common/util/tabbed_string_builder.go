package util

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// TabbedStringBuilder accumulates tab-separated rows and renders them as a
// column-aligned string. The underlying tabwriter writes into a
// strings.Builder, which never errors, so callers get a simpler interface
// than *tabwriter.Writer exposes.
type TabbedStringBuilder struct {
	sb     *strings.Builder
	writer *tabwriter.Writer
}

// NewTabbedStringBuilder creates a new TabbedStringBuilder. All parameters are
// equivalent to those defined in tabwriter.NewWriter.
func NewTabbedStringBuilder(minwidth, tabwidth, padding int, padchar byte, flags uint) *TabbedStringBuilder {
	sb := &strings.Builder{}
	return &TabbedStringBuilder{
		sb:     sb,
		writer: tabwriter.NewWriter(sb, minwidth, tabwidth, padding, padchar, flags),
	}
}

// Writef formats according to a format specifier and appends to the builder.
func (t *TabbedStringBuilder) Writef(format string, a ...any) {
	_, _ = fmt.Fprintf(t.writer, format, a...)
}

// String returns the accumulated, aligned string, flushing the writer.
func (t *TabbedStringBuilder) String() string {
	_ = t.writer.Flush()
	return t.sb.String()
}

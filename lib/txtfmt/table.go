//
// (C) Copyright 2019-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txtfmt

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableRow is a map of string values to be printed, keyed by column title.
type TableRow map[string]string

// TableFormatter formats rows into a table with labeled columns.
type TableFormatter struct {
	titles []string
}

// NewTableFormatter creates a TableFormatter with the given ordered
// column titles.
func NewTableFormatter(columnTitles ...string) *TableFormatter {
	return &TableFormatter{titles: columnTitles}
}

func (t *TableFormatter) writeHeader(w io.Writer) {
	for _, title := range t.titles {
		fmt.Fprintf(w, "%s\t", title)
	}
	fmt.Fprint(w, "\n")
	for _, title := range t.titles {
		fmt.Fprintf(w, "%s\t", strings.Repeat("-", len(title)))
	}
	fmt.Fprint(w, "\n")
}

// Write writes the table to out. Missing values are shown as "None".
func (t *TableFormatter) Write(out io.Writer, table []TableRow) error {
	if len(t.titles) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
	t.writeHeader(tw)
	for _, row := range table {
		for _, title := range t.titles {
			value, ok := row[title]
			if !ok {
				value = "None"
			}
			fmt.Fprintf(tw, "%s\t", value)
		}
		fmt.Fprint(tw, "\n")
	}

	return tw.Flush()
}

// Format returns the table as a string.
func (t *TableFormatter) Format(table []TableRow) string {
	var sb strings.Builder
	t.Write(&sb, table)
	return sb.String()
}

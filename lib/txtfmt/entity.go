//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txtfmt

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

const defEntityRowIndent = 2

// EntityAttr is a single attribute of an entity.
type EntityAttr struct {
	Key   string
	Value string
}

// FormatEntity returns the title followed by one indented key/value
// line per attribute, in order.
func FormatEntity(title string, attrs []EntityAttr) string {
	var sb strings.Builder

	if title != "" {
		fmt.Fprintf(&sb, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	indent := strings.Repeat(" ", defEntityRowIndent)
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)
	for _, attr := range attrs {
		fmt.Fprintf(tw, "%s%s\t: %s\n", indent, attr.Key, attr.Value)
	}
	tw.Flush()

	return sb.String()
}

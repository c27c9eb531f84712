// Package report renders a package ranking for terminals
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"pkgstats/internal/core/contents"
)

// Header is the first line of every report
const Header = "PACKAGE\tFILES"

// Write prints the header and one aligned "name  count" line per entry, in the given order
func Write(w io.Writer, entries []contents.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, Header); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%d\n", e.Name, e.Count); err != nil {
			return err
		}
	}
	return tw.Flush()
}

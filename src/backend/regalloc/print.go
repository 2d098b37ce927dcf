package regalloc

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// String returns a print friendly listing of the table, one virtual register per line.
func (t *Table) String() string {
	sb := strings.Builder{}
	name := t.Function
	if len(name) == 0 {
		name = "<anonymous>"
	}
	sb.WriteString(fmt.Sprintf("%s: %d virtual registers, %d colours, %d spilled, frame size %d\n",
		name, len(t.Entries), t.Colours, t.Slots, t.FrameSize))

	w := tabwriter.NewWriter(&sb, 4, 1, 1, ' ', 0)
	for _, e1 := range t.Entries {
		if e1.Spilled {
			_, _ = fmt.Fprintf(w, "\tv%d\tslot %d\t[sp, #%d]\n", e1.Index, e1.Slot, e1.Offset)
		} else {
			_, _ = fmt.Fprintf(w, "\tv%d\t%s\n", e1.Index, e1.Register)
		}
	}
	_ = w.Flush()
	return sb.String()
}

// FormatTables concatenates the listings of ts, separated by blank lines.
func FormatTables(ts []*Table) string {
	s := make([]string, len(ts))
	for i1, e1 := range ts {
		s[i1] = e1.String()
	}
	return strings.Join(s, "\n")
}

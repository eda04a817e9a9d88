package enrichment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoDataSentinel is the literal text rendered when the transaction window
// is empty. The task executor checks the underlying context, not this
// string, but keeping it explicit makes prompts self-describing.
const NoDataSentinel = "No transaction data available for the selected period."

// Render turns an enrichment Context into a prompt-appendable text block:
// the profile as a labeled JSON block, the transactions as a labeled and
// counted JSON block, or the no-data sentinel when the window is empty.
func Render(ec *Context) string {
	if ec == nil {
		return NoDataSentinel
	}

	var b strings.Builder

	if ec.Profile != nil {
		if blob, err := json.MarshalIndent(ec.Profile, "", "  "); err == nil {
			b.WriteString("Entity profile (JSON):\n")
			b.Write(blob)
			b.WriteString("\n\n")
		}
	}

	if len(ec.Transactions) == 0 {
		b.WriteString(NoDataSentinel)
		return b.String()
	}

	fmt.Fprintf(&b, "Transactions from %s to %s (%d records, newest first, JSON):\n",
		ec.Range.Start, ec.Range.End, len(ec.Transactions))
	if blob, err := json.MarshalIndent(ec.Transactions, "", "  "); err == nil {
		b.Write(blob)
	}

	return b.String()
}

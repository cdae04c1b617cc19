package workspace

import (
	"regexp"
	"strings"
)

// DefaultTabName is used when a tab's text matches no derivable shape.
const DefaultTabName = "New Query"

// namePattern extracts "<ACTION> <TARGET>" from the first statement keyword
// and the token after an optional FROM clause. The dot does not cross
// newlines, so a multi-line SELECT derives its target from the first line.
var namePattern = regexp.MustCompile(`(?i)^\s*(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)\s+(?:.*?FROM\s+)?(\S+)`)

// DeriveName computes the automatic display name for a tab's query text.
func DeriveName(text string) string {
	m := namePattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultTabName
	}
	return strings.ToUpper(m[1]) + " " + m[2]
}

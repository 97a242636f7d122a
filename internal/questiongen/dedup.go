package questiongen

import (
	"fmt"
	"strings"
)

// buildDedup formats prior questions for the prompt, keeping only the most
// recent max entries.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

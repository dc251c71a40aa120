package search

import "regexp"

var (
	lowerUpper  = regexp.MustCompile(`([a-z])([A-Z])`)
	afterPeriod = regexp.MustCompile(`\.([A-Za-z])`)
)

// CleanText re-inserts whitespace the ingestion step tends to drop:
// lower-to-upper transitions and missing spaces after sentence periods.
// Best-effort cosmetic repair; it can split legitimately camel-cased
// tokens.
func CleanText(s string) string {
	s = lowerUpper.ReplaceAllString(s, "$1 $2")
	s = afterPeriod.ReplaceAllString(s, ". $1")
	return s
}

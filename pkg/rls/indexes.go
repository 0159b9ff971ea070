package rls

import "regexp"

// ColumnExtractor finds the columns of a condition worth indexing.
// Results may contain duplicates; the policy renderer de-duplicates them.
type ColumnExtractor interface {
	ExtractColumns(cond Condition) []string
}

// comparedColumn matches a bare identifier directly followed by one of
// = > < >= <= IN.
var comparedColumn = regexp.MustCompile(`(\w+)\s*(?:=|>|<|>=|<=|IN)`)

// PatternExtractor scans the rendered condition text for "identifier op"
// pairs. It is the default extractor.
//
// The scan is text based and lossy: it only sees simple "column OP value"
// shapes, picks up columns inside nested sub-queries, cannot see through
// qualified names (t.owner_id yields owner_id) and can mis-read identifiers
// that happen to precede an operator inside a value.
type PatternExtractor struct{}

// ExtractColumns implements ColumnExtractor.
func (PatternExtractor) ExtractColumns(cond Condition) []string {
	if cond == nil {
		return nil
	}
	matches := comparedColumn.FindAllStringSubmatch(cond.SQL(), -1)
	cols := make([]string, 0, len(matches))
	for _, m := range matches {
		cols = append(cols, m[1])
	}
	return cols
}

// ComparisonExtractor walks the condition tree and returns the column of
// every comparison using =, >, >=, <, <= or IN. Columns referenced only
// inside sub-queries are not returned.
type ComparisonExtractor struct{}

var indexableOperators = map[string]bool{
	"=": true, ">": true, ">=": true, "<": true, "<=": true, "IN": true,
}

// ExtractColumns implements ColumnExtractor.
func (ComparisonExtractor) ExtractColumns(cond Condition) []string {
	var cols []string
	Walk(cond, func(c Condition) bool {
		if cmp, ok := c.(Comparison); ok && indexableOperators[cmp.Operator()] {
			cols = append(cols, cmp.ColumnName())
		}
		return true
	})
	return cols
}

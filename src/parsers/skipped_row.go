package parsers

// SkippedRow records a source row that was dropped during a best-effort
// parse, so callers can report how many rows were skipped and why.
type SkippedRow struct {
	Line   int
	Reason string
}

package spreadsheet

// Sheet is a parsed tabular file: the header row plus one map per data
// row, keyed by header name. Row order is preserved and becomes the
// canonical store order after import.
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// HasHeader reports whether the header row contains name exactly
// (matching is case-sensitive).
func (s *Sheet) HasHeader(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

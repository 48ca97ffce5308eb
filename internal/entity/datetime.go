package entity

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for the stored datetime strings. Spreadsheets are not
// consistent about this, so both ISO forms and the US slash forms pass.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// ParseDateTime parses a stored timestamp string. The result carries no
// location; callers decide what zone a naive timestamp lives in.
func ParseDateTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", raw)
}

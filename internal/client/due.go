package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dueParser = newDueParser()

func newDueParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// parseDue reads a due time as RFC 3339, as a bare date, or as an English
// phrase relative to now ("tomorrow 9am", "next friday"). The result is UTC.
func parseDue(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, now.Location()); err == nil {
		return t.UTC(), nil
	}

	r, err := dueParser.Parse(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due %q: %w", ErrUsage, s, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: due %q is not a time", ErrUsage, s)
	}
	return r.Time.UTC(), nil
}

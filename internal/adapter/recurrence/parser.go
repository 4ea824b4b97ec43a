// Package recurrence expands RFC 5545 recurrence rules with rrule-go.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const dtstartLayout = "20060102T150405Z"

// Parser accepts a bare rule ("FREQ=DAILY;COUNT=5"), a prefixed rule
// ("RRULE:FREQ=WEEKLY") or a multi-line set with DTSTART, RRULE, RDATE and
// EXDATE lines. Without a DTSTART line the series starts at the given start.
type Parser struct{}

func NewParser() Parser {
	return Parser{}
}

var _ ports.RecurrenceParser = Parser{}

func (Parser) Parse(rule string, start time.Time) (ports.OccurrenceSequence, error) {
	lines, hasStart := normalize(rule)
	if len(lines) == 0 {
		return nil, domain.ErrInvalidRecurrenceRule
	}
	if !hasStart {
		lines = append([]string{"DTSTART:" + start.UTC().Format(dtstartLayout)}, lines...)
	}

	set, err := rrule.StrSliceToRRuleSet(lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecurrenceRule, err)
	}
	// A set with nothing but a start date describes one instant, not a series.
	if set.GetRRule() == nil && len(set.GetRDate()) == 0 {
		return nil, domain.ErrInvalidRecurrenceRule
	}
	return set, nil
}

func normalize(rule string) (lines []string, hasStart bool) {
	for _, line := range strings.Split(strings.ReplaceAll(rule, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "DTSTART") {
			hasStart = true
		}
		if !strings.ContainsAny(line, ":") && strings.Contains(upper, "FREQ=") {
			line = "RRULE:" + line
		}
		lines = append(lines, line)
	}
	return lines, hasStart
}

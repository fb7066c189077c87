// Package report contains the reporting and aggregation use cases: date
// filtering, dashboard statistics, exports and derived notifications.
package report

import "time"

// FilterMode selects how a record set is narrowed by date.
type FilterMode string

const (
	FilterModeAll        FilterMode = "all"
	FilterModeDate       FilterMode = "date"
	FilterModeMonth      FilterMode = "month"
	FilterModeDateRange  FilterMode = "dateRange"
	FilterModeMonthRange FilterMode = "monthRange"
	FilterModeYear       FilterMode = "year"
)

// Bound formats accepted per mode.
const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	yearLayout  = "2006"
)

// FilterByDate returns the subset of records whose date, extracted by dateOf,
// satisfies the mode and bounds. Bounds are form-field strings: a full date
// for "date"/"dateRange", a year-month for "month"/"monthRange", a year for
// "year". Missing or unparsable bounds for a mode that needs them disable
// the filter and return every record; callers rely on this permissive
// default for predictable form behavior. Input order is preserved.
func FilterByDate[T any](records []T, dateOf func(T) time.Time, mode FilterMode, start, end string) []T {
	keep := predicate(mode, start, end)
	if keep == nil {
		return records
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if keep(dateOf(record)) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// predicate builds the date predicate for a mode, or nil when the mode does
// not constrain anything (mode "all", unknown modes, missing bounds).
func predicate(mode FilterMode, start, end string) func(time.Time) bool {
	switch mode {
	case FilterModeDate:
		if start == "" {
			return nil
		}
		day, err := time.Parse(dayLayout, start)
		if err != nil {
			return nil
		}
		return func(d time.Time) bool {
			return d.Format(dayLayout) == day.Format(dayLayout)
		}

	case FilterModeMonth:
		if start == "" {
			return nil
		}
		month, err := time.Parse(monthLayout, start)
		if err != nil {
			return nil
		}
		return func(d time.Time) bool {
			return d.Year() == month.Year() && d.Month() == month.Month()
		}

	case FilterModeDateRange:
		if start == "" || end == "" {
			return nil
		}
		from, err := time.Parse(dayLayout, start)
		if err != nil {
			return nil
		}
		to, err := time.Parse(dayLayout, end)
		if err != nil {
			return nil
		}
		return betweenInclusive(from, to)

	case FilterModeMonthRange:
		if start == "" || end == "" {
			return nil
		}
		from, err := time.Parse(monthLayout, start)
		if err != nil {
			return nil
		}
		to, err := time.Parse(monthLayout, end)
		if err != nil {
			return nil
		}
		// First day of the start month through the last day of the end month.
		to = time.Date(to.Year(), to.Month()+1, 0, 0, 0, 0, 0, to.Location())
		return betweenInclusive(from, to)

	case FilterModeYear:
		if start == "" {
			return nil
		}
		year, err := time.Parse(yearLayout, start)
		if err != nil {
			return nil
		}
		return func(d time.Time) bool {
			return d.Year() == year.Year()
		}

	default:
		return nil
	}
}

// betweenInclusive keeps dates with from <= d <= to, compared as instants.
func betweenInclusive(from, to time.Time) func(time.Time) bool {
	return func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	}
}

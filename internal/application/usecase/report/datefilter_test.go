// Package report contains the reporting and aggregation use cases.
package report

import (
	"testing"
	"time"
)

type datedRow struct {
	name string
	date time.Time
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func rowNames(rows []datedRow) []string {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.name
	}
	return names
}

func TestFilterByDate(t *testing.T) {
	rows := []datedRow{
		{name: "jan-early", date: day("2024-01-05")},
		{name: "jan-late", date: day("2024-01-31")},
		{name: "feb", date: day("2024-02-10")},
		{name: "mar", date: day("2024-03-15")},
		{name: "prev-year", date: day("2023-12-31")},
	}
	dateOf := func(r datedRow) time.Time { return r.date }

	t.Run("mode all returns every record", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeAll, "", "")
		if len(got) != len(rows) {
			t.Errorf("expected %d records, got %d", len(rows), len(got))
		}
	})

	t.Run("date keeps exact day matches only", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeDate, "2024-02-10", "")
		if len(got) != 1 || got[0].name != "feb" {
			t.Errorf("expected [feb], got %v", rowNames(got))
		}
	})

	t.Run("month keeps same calendar month", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeMonth, "2024-01", "")
		if len(got) != 2 || got[0].name != "jan-early" || got[1].name != "jan-late" {
			t.Errorf("expected [jan-early jan-late], got %v", rowNames(got))
		}
	})

	t.Run("dateRange bounds are inclusive", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeDateRange, "2024-01-31", "2024-02-10")
		if len(got) != 2 || got[0].name != "jan-late" || got[1].name != "feb" {
			t.Errorf("expected [jan-late feb], got %v", rowNames(got))
		}
	})

	t.Run("monthRange includes the last day of the end month", func(t *testing.T) {
		endOfFeb := []datedRow{
			{name: "feb-last", date: day("2024-02-29")},
			{name: "mar-first", date: day("2024-03-01")},
		}
		got := FilterByDate(endOfFeb, dateOf, FilterModeMonthRange, "2024-01", "2024-02")
		if len(got) != 1 || got[0].name != "feb-last" {
			t.Errorf("expected [feb-last], got %v", rowNames(got))
		}
	})

	t.Run("year keeps the calendar year", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeYear, "2023", "")
		if len(got) != 1 || got[0].name != "prev-year" {
			t.Errorf("expected [prev-year], got %v", rowNames(got))
		}
	})

	t.Run("missing bound disables the filter", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeDate, "", "")
		if len(got) != len(rows) {
			t.Errorf("expected all %d records, got %d", len(rows), len(got))
		}

		got = FilterByDate(rows, dateOf, FilterModeDateRange, "2024-01-01", "")
		if len(got) != len(rows) {
			t.Errorf("expected all %d records with missing end bound, got %d", len(rows), len(got))
		}
	})

	t.Run("unparsable bound disables the filter", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeMonth, "not-a-month", "")
		if len(got) != len(rows) {
			t.Errorf("expected all %d records, got %d", len(rows), len(got))
		}
	})

	t.Run("unknown mode disables the filter", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterMode("quarter"), "2024-01-01", "2024-03-31")
		if len(got) != len(rows) {
			t.Errorf("expected all %d records, got %d", len(rows), len(got))
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		got := FilterByDate(rows, dateOf, FilterModeYear, "2024", "")
		want := []string{"jan-early", "jan-late", "feb", "mar"}
		if len(got) != len(want) {
			t.Fatalf("expected %d records, got %d", len(want), len(got))
		}
		for i, name := range want {
			if got[i].name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, got[i].name)
			}
		}
	})
}

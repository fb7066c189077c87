package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToCSV(t *testing.T) {
	headers := []string{"guest_name", "amount", "notes"}

	t.Run("plain strings are never quoted", func(t *testing.T) {
		records := []Record{
			{"guest_name": "Alice", "amount": decimal.NewFromInt(5000), "notes": "on time"},
		}

		got := ToCSV(records, headers)
		want := "guest_name,amount,notes\nAlice,5000,on time"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("strings with commas are quoted", func(t *testing.T) {
		records := []Record{
			{"guest_name": "Smith, Bob", "amount": decimal.NewFromInt(4500), "notes": ""},
		}

		got := ToCSV(records, headers)
		want := "guest_name,amount,notes\n\"Smith, Bob\",4500,"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("internal quotes are doubled", func(t *testing.T) {
		records := []Record{
			{"guest_name": `Bob, "the guest"`, "amount": decimal.NewFromInt(100), "notes": "x"},
		}

		got := ToCSV(records, headers)
		want := "guest_name,amount,notes\n\"Bob, \"\"the guest\"\"\",100,x"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("non-string values are never quoted", func(t *testing.T) {
		records := []Record{
			{"guest_name": "Carol", "amount": decimal.RequireFromString("1234.50"), "notes": "ok"},
		}

		got := ToCSV(records, headers)
		if strings.Contains(got, `"1234.5"`) {
			t.Errorf("amount should not be quoted: %q", got)
		}
		if !strings.Contains(got, "1234.5") {
			t.Errorf("expected decimal rendering in %q", got)
		}
	})

	t.Run("missing keys yield empty columns", func(t *testing.T) {
		records := []Record{
			{"guest_name": "Dan"},
		}

		got := ToCSV(records, headers)
		want := "guest_name,amount,notes\nDan,,"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("dates render as year-month-day", func(t *testing.T) {
		records := []Record{
			{"guest_name": "Eve", "amount": day("2024-03-15"), "notes": ""},
		}

		got := ToCSV(records, headers)
		if !strings.Contains(got, "2024-03-15") {
			t.Errorf("expected date rendering in %q", got)
		}
	})

	t.Run("empty record set still emits the header row", func(t *testing.T) {
		got := ToCSV(nil, headers)
		if got != "guest_name,amount,notes" {
			t.Errorf("expected bare header row, got %q", got)
		}
	})
}

func TestToPDF(t *testing.T) {
	columns := []Column{
		{Header: "Guest", DataKey: "guest_name"},
		{Header: "Amount", DataKey: "amount"},
	}
	records := []Record{
		{"guest_name": "Alice", "amount": decimal.NewFromInt(5000)},
		{"guest_name": "Bob", "amount": decimal.NewFromInt(4500)},
	}

	t.Run("produces a pdf document", func(t *testing.T) {
		data, err := ToPDF(records, columns, "Payments Report", day("2024-03-01"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Errorf("expected pdf magic bytes, got %q", data[:min(8, len(data))])
		}
	})

	t.Run("renders with no records", func(t *testing.T) {
		data, err := ToPDF(nil, columns, "Payments Report", day("2024-03-01"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) == 0 {
			t.Error("expected non-empty document")
		}
	})
}

package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Record is one exportable row, keyed by column name.
type Record map[string]any

// Column maps a display label to the record key that feeds it.
type Column struct {
	Header  string
	DataKey string
}

// ToCSV renders records as comma-separated text: one header row, then one
// row per record in input order, newline-joined. A record missing a header's
// key yields an empty column. Only string values are ever quoted, and only
// when they contain a comma or a double quote; internal quotes are doubled.
func ToCSV(records []Record, headers []string) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, record := range records {
		fields := make([]string, len(headers))
		for i, header := range headers {
			fields[i] = csvField(record[header])
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// csvField stringifies a single value under the CSV quoting rule.
func csvField(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		if strings.ContainsAny(s, ",\"") {
			return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
		}
		return s
	}
	return plainString(value)
}

// plainString renders non-string values without quoting.
func plainString(value any) string {
	switch v := value.(type) {
	case decimal.Decimal:
		return v.String()
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

// Table layout constants, in millimeters on an A4 portrait page.
const (
	pdfMarginLeft   = 14.0
	pdfTitleY       = 15.0
	pdfStampY       = 22.0
	pdfTableStartY  = 28.0
	pdfHeaderHeight = 8.0
	pdfRowHeight    = 7.0
)

// ToPDF renders records as a paginated table document: a title line, a
// generation-timestamp line, then a header row and one body row per record.
// Column and row order follow the input exactly; absent keys render empty.
func ToPDF(records []Record, columns []Column, title string, generatedAt time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Text(pdfMarginLeft, pdfTitleY, title)

	doc.SetFont("Helvetica", "", 10)
	doc.Text(pdfMarginLeft, pdfStampY, fmt.Sprintf("Generated on: %s", generatedAt.Format("02/01/2006")))

	pageWidth, _ := doc.GetPageSize()
	tableWidth := pageWidth - 2*pdfMarginLeft
	colWidth := tableWidth / float64(len(columns))

	// Header row.
	doc.SetY(pdfTableStartY)
	doc.SetX(pdfMarginLeft)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(99, 102, 241)
	doc.SetTextColor(255, 255, 255)
	for _, column := range columns {
		doc.CellFormat(colWidth, pdfHeaderHeight, column.Header, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	// Body rows.
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	doc.SetFillColor(245, 245, 250)
	for i, record := range records {
		doc.SetX(pdfMarginLeft)
		fill := i%2 == 1
		for _, column := range columns {
			value := ""
			if raw, ok := record[column.DataKey]; ok && raw != nil {
				if s, isString := raw.(string); isString {
					value = s
				} else {
					value = plainString(raw)
				}
			}
			doc.CellFormat(colWidth, pdfRowHeight, value, "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
)

// ExportDataset selects which record set is exported.
type ExportDataset string

const (
	ExportDatasetPayments ExportDataset = "payments"
	ExportDatasetExpenses ExportDataset = "expenses"
)

// ExportFormat selects the output document type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportRecordsInput represents the input for a report export.
type ExportRecordsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Dataset    ExportDataset
	Format     ExportFormat
	FilterMode FilterMode
	StartDate  string
	EndDate    string
}

// ExportRecordsOutput carries the rendered document. Filename is the
// date-stamped base name plus extension; delivery is up to the caller.
type ExportRecordsOutput struct {
	Filename    string
	ContentType string
	Data        []byte
	RecordCount int
}

// ExportRecordsUseCase renders a filtered record set into a downloadable
// document.
type ExportRecordsUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	paymentRepo  adapter.PaymentRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewExportRecordsUseCase creates a new ExportRecordsUseCase instance.
func NewExportRecordsUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, paymentRepo adapter.PaymentRepository, expenseRepo adapter.ExpenseRepository) *ExportRecordsUseCase {
	return &ExportRecordsUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		paymentRepo:  paymentRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute loads the dataset, applies the date filter and renders the export.
func (uc *ExportRecordsUseCase) Execute(ctx context.Context, input ExportRecordsInput) (*ExportRecordsOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	var (
		records  []Record
		dates    []time.Time
		columns  []Column
		baseName string
		title    string
	)

	switch input.Dataset {
	case ExportDatasetPayments:
		paymentsWithGuests, err := uc.paymentRepo.FindByProperty(ctx, input.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load payments: %w", err)
		}
		for _, pw := range paymentsWithGuests {
			guestName := ""
			if pw.Guest != nil {
				guestName = pw.Guest.FullName
			}
			records = append(records, Record{
				"guest_name":     guestName,
				"amount":         pw.Payment.Amount,
				"payment_date":   pw.Payment.PaymentDate,
				"payment_month":  pw.Payment.PaymentMonth.Format("2006-01"),
				"payment_method": string(pw.Payment.PaymentMethod),
				"notes":          pw.Payment.Notes,
			})
			dates = append(dates, pw.Payment.PaymentDate)
		}
		columns = []Column{
			{Header: "Guest", DataKey: "guest_name"},
			{Header: "Amount", DataKey: "amount"},
			{Header: "Date", DataKey: "payment_date"},
			{Header: "Month", DataKey: "payment_month"},
			{Header: "Method", DataKey: "payment_method"},
			{Header: "Notes", DataKey: "notes"},
		}
		baseName = "payments_report"
		title = "Payments Report"

	case ExportDatasetExpenses:
		expenses, err := uc.expenseRepo.FindByProperty(ctx, input.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses: %w", err)
		}
		for _, expense := range expenses {
			records = append(records, Record{
				"expense_type": expense.ExpenseType,
				"amount":       expense.Amount,
				"description":  expense.Description,
				"expense_date": expense.ExpenseDate,
			})
			dates = append(dates, expense.ExpenseDate)
		}
		columns = []Column{
			{Header: "Type", DataKey: "expense_type"},
			{Header: "Amount", DataKey: "amount"},
			{Header: "Description", DataKey: "description"},
			{Header: "Date", DataKey: "expense_date"},
		}
		baseName = "expenses_report"
		title = "Expenses Report"

	default:
		return nil, fmt.Errorf("unknown export dataset %q", input.Dataset)
	}

	// The date filter runs over the assembled rows; the parallel dates slice
	// carries the raw values so the predicate never re-parses formatted text.
	indexed := make([]int, len(records))
	for i := range indexed {
		indexed[i] = i
	}
	kept := FilterByDate(indexed, func(i int) time.Time { return dates[i] }, input.FilterMode, input.StartDate, input.EndDate)

	filtered := make([]Record, len(kept))
	for i, idx := range kept {
		filtered[i] = records[idx]
	}

	now := time.Now().UTC()
	stamped := fmt.Sprintf("%s_%s", baseName, now.Format("2006-01-02"))

	switch input.Format {
	case ExportFormatCSV:
		headers := make([]string, len(columns))
		for i, column := range columns {
			headers[i] = column.DataKey
		}
		return &ExportRecordsOutput{
			Filename:    stamped + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte(ToCSV(filtered, headers)),
			RecordCount: len(filtered),
		}, nil

	case ExportFormatPDF:
		data, err := ToPDF(filtered, columns, title, now)
		if err != nil {
			return nil, err
		}
		return &ExportRecordsOutput{
			Filename:    stamped + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
			RecordCount: len(filtered),
		}, nil

	default:
		return nil, fmt.Errorf("unknown export format %q", input.Format)
	}
}

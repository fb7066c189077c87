// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgdesk/backend/internal/application/usecase/report"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
)

// ReportController handles dashboard, notification and export endpoints.
type ReportController struct {
	dashboardUseCase     *report.GetDashboardUseCase
	notificationsUseCase *report.GetNotificationsUseCase
	exportUseCase        *report.ExportRecordsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardUseCase,
	notificationsUseCase *report.GetNotificationsUseCase,
	exportUseCase *report.ExportRecordsUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:     dashboardUseCase,
		notificationsUseCase: notificationsUseCase,
		exportUseCase:        exportUseCase,
	}
}

// Dashboard handles GET /properties/:property_id/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := report.GetDashboardInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output.Stats))
}

// Notifications handles GET /properties/:property_id/notifications requests.
func (c *ReportController) Notifications(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := report.GetNotificationsInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	output, err := c.notificationsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	notifications := make([]dto.NotificationResponse, len(output.Notifications))
	for i, notification := range output.Notifications {
		notifications[i] = dto.ToNotificationResponse(notification)
	}
	ctx.JSON(http.StatusOK, dto.NotificationListResponse{Notifications: notifications})
}

// Export handles GET /properties/:property_id/reports/export requests.
// Query parameters: dataset (payments|expenses), format (csv|pdf), and the
// optional filter_mode/start_date/end_date narrowing.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := report.ExportRecordsInput{
		UserID:     userID,
		PropertyID: propertyID,
		Dataset:    report.ExportDataset(ctx.DefaultQuery("dataset", string(report.ExportDatasetPayments))),
		Format:     report.ExportFormat(ctx.DefaultQuery("format", string(report.ExportFormatCSV))),
		FilterMode: report.FilterMode(ctx.DefaultQuery("filter_mode", string(report.FilterModeAll))),
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	}

	if input.Dataset != report.ExportDatasetPayments && input.Dataset != report.ExportDatasetExpenses {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid dataset, expected payments or expenses",
		})
		return
	}
	if input.Format != report.ExportFormatCSV && input.Format != report.ExportFormatPDF {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid format, expected csv or pdf",
		})
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	if respondPropertyError(ctx, err) {
		return
	}
	respondInternalError(ctx)
}

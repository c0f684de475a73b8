package handlers

import (
	"fmt"
	"net/http"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/resource"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// LogsHandler serves the activity-log PDF export on top of the read-only
// log routes.
type LogsHandler struct {
	Activity *resource.Client[models.ActivityLog]
}

// GET /admin/api/logs/activity/export.pdf
func (h LogsHandler) ExportActivityPDF(c *gin.Context) {
	q, err := ParseQuery(c)
	if err != nil {
		RespondResourceError(c, err)
		return
	}
	svc := services.ReportService{
		Logs:      h.Activity,
		RequestID: middleware.GetRequestID(c),
	}
	data, filename, err := svc.ActivityReport(c.Request.Context(), q)
	if err != nil {
		RespondResourceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

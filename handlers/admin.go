package handlers

import (
	"net/http"
	"time"

	"court_watch_go/services"

	"github.com/labstack/echo/v4"
)

// AdminHandlers exposes manual triggers for the batch pipeline. Useful for
// backfills and operational reruns; the scheduler remains the normal driver.
type AdminHandlers struct {
	Importer   *services.CourtDataImporter
	Dispatcher *services.NotificationDispatcher
}

// TriggerImportHandler runs an import for the given date (default: tomorrow).
func (h *AdminHandlers) TriggerImportHandler(c echo.Context) error {
	date, err := resolveDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date format: expected YYYY-MM-DD"})
	}

	result := h.Importer.ImportForDate(date)
	return c.JSON(http.StatusOK, map[string]int{
		"success": result.Success,
		"failed":  result.Failed,
	})
}

// TriggerDispatchHandler runs notification dispatch for the given date.
func (h *AdminHandlers) TriggerDispatchHandler(c echo.Context) error {
	date, err := resolveDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date format: expected YYYY-MM-DD"})
	}

	sent, err := h.Dispatcher.ProcessHearingsForDate(date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"sent": sent})
}

func resolveDate(param string) (time.Time, error) {
	if param == "" {
		return time.Now().AddDate(0, 0, 1), nil
	}
	return time.Parse("2006-01-02", param)
}

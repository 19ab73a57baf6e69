package server

import (
	"fmt"
	"net/http"
	"time"

	reportdomain "github.com/aushadhi/pos/internal/report/domain"
	"github.com/gin-gonic/gin"
)

const dayLayout = "2006-01-02"

// DailyReport computes the sales report for one day, defaulting to the
// current day.
func (s *Server) DailyReport(c *gin.Context) {
	day := s.clk.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			invalidRequestError(c, fmt.Errorf("invalid date %q", raw))
			return
		}
		day = parsed
	}
	report, err := s.reports.Summarize(c.Request.Context(), day)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportDailyReport streams persisted daily summaries for a date range
// as an Excel workbook.
func (s *Server) ExportDailyReport(c *gin.Context) {
	from, err := time.Parse(dayLayout, c.Query("from"))
	if err != nil {
		invalidRequestError(c, fmt.Errorf("invalid from date %q", c.Query("from")))
		return
	}
	to, err := time.Parse(dayLayout, c.Query("to"))
	if err != nil {
		invalidRequestError(c, fmt.Errorf("invalid to date %q", c.Query("to")))
		return
	}

	workbook, err := s.reports.ExportRangeXLSX(c.Request.Context(), reportdomain.RangeRequest{From: from, To: to})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("daily-sales-%s-to-%s.xlsx", from.Format(dayLayout), to.Format(dayLayout))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

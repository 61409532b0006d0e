/*
FILE: internal/api/report_handler.go

DESCRIPTION:
    GET /reports/:runId/... — the read side of the pipeline's HTTP
    transport. Looks up a previously ingested run's Events and applies the
    Reporter's period/calendar iterators, rendering the result as JSON, or
    as an .xlsx/.pdf export when ?format= asks for one.

ENDPOINTS:
    GET /reports/:runId/period?start=&end=&title=[&format=]
    GET /reports/:runId/monthly[?max=&format=]
    GET /reports/:runId/quarterly?year=&quarter=[&format=]
    GET /reports/:runId/yearly?year=[&format=]
    GET /reports/:runId/range?start=YYYY-MM&end=YYYY-MM[&format=]
==============================================================================
*/
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dopazo/hhr-census/internal/exporter"
	"github.com/dopazo/hhr-census/internal/report"
	"github.com/dopazo/hhr-census/internal/reporter"
)

// ReportHandler serves period reports over a previously ingested run.
type ReportHandler struct {
	store       *RunStore
	bedCapacity int
	maxMonthly  int
}

// NewReportHandler builds a ReportHandler. bedCapacity and maxMonthly come
// from AppConfig and are the defaults a request can override per-call.
func NewReportHandler(store *RunStore, bedCapacity, maxMonthly int) *ReportHandler {
	return &ReportHandler{store: store, bedCapacity: bedCapacity, maxMonthly: maxMonthly}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/reports/:runId")
	group.GET("/period", h.Period)
	group.GET("/monthly", h.Monthly)
	group.GET("/quarterly", h.Quarterly)
	group.GET("/yearly", h.Yearly)
	group.GET("/range", h.Range)
}

func (h *ReportHandler) Period(c *gin.Context) {
	events, ok := h.store.Get(c.Param("runId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown run id"})
		return
	}
	start, err := parseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: " + err.Error()})
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: " + err.Error()})
		return
	}
	title := c.DefaultQuery("title", c.Query("start")+" to "+c.Query("end"))

	r, found := reporter.ReportForPeriod(events, title, start, end, h.capacity(c))
	h.respond(c, r, found)
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	events, ok := h.store.Get(c.Param("runId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown run id"})
		return
	}
	max := h.maxMonthly
	if v := c.Query("max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			max = n
		}
	}
	reports := reporter.MonthlyReports(events, max, h.capacity(c))
	if len(reports) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no events to report on"})
		return
	}
	if format := c.Query("format"); format == "xlsx" || format == "pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format=xlsx/pdf requires a single report; use /period, /quarterly, /yearly, or /range"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) Quarterly(c *gin.Context) {
	events, ok := h.store.Get(c.Param("runId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown run id"})
		return
	}
	year, err1 := strconv.Atoi(c.Query("year"))
	quarter, err2 := strconv.Atoi(c.Query("quarter"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and quarter are required integers"})
		return
	}
	r, found := reporter.QuarterlyReport(events, year, quarter, h.capacity(c))
	h.respond(c, r, found)
}

func (h *ReportHandler) Yearly(c *gin.Context) {
	events, ok := h.store.Get(c.Param("runId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown run id"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is a required integer"})
		return
	}
	r, found := reporter.YearlyReport(events, year, h.capacity(c))
	h.respond(c, r, found)
}

func (h *ReportHandler) Range(c *gin.Context) {
	events, ok := h.store.Get(c.Param("runId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown run id"})
		return
	}
	start, err := parseYearMonth(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: " + err.Error()})
		return
	}
	end, err := parseYearMonth(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: " + err.Error()})
		return
	}
	title := c.DefaultQuery("title", c.Query("start")+" to "+c.Query("end"))
	r, found := reporter.RangeReport(events, title, start, end, h.capacity(c))
	h.respond(c, r, found)
}

// capacity lets a request override the server's default bed capacity for
// occupancyRate. Without one, the server default applies; when that is also
// zero, the rate stays zero.
func (h *ReportHandler) capacity(c *gin.Context) int {
	if v := c.Query("bedCapacity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return h.bedCapacity
}

func (h *ReportHandler) respond(c *gin.Context, r *report.Report, found bool) {
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no events overlap the requested period"})
		return
	}
	switch c.Query("format") {
	case "xlsx":
		data, err := exporter.WriteXLSX(r)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "pdf":
		data, err := exporter.WritePDF(r)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		c.JSON(http.StatusOK, r)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseYearMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, time.Local), nil
}

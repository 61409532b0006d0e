/*
FILE: internal/api/workbook_handler.go

DESCRIPTION:
    POST /workbooks: the HTTP transport's entry point into the pipeline.
    Accepts one or more multipart workbook files, runs them through
    ingest.Batch + reconciler.Reconcile, stores the resulting Events under a
    fresh run ID, and reports per-file soft failures (an unparseable file is
    fatal only for itself).
==============================================================================
*/
package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dopazo/hhr-census/internal/apierrors"
	"github.com/dopazo/hhr-census/internal/ingest"
	"github.com/dopazo/hhr-census/internal/reconciler"
)

// WorkbookHandler handles bulk ingestion of census workbooks.
type WorkbookHandler struct {
	store *RunStore
}

// NewWorkbookHandler builds a WorkbookHandler backed by store.
func NewWorkbookHandler(store *RunStore) *WorkbookHandler {
	return &WorkbookHandler{store: store}
}

func (h *WorkbookHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workbooks", h.Ingest)
}

type fileOutcome struct {
	Filename  string `json:"filename"`
	Snapshots int    `json:"snapshots"`
	Error     string `json:"error,omitempty"`
}

type ingestResponse struct {
	RunID   string        `json:"runId"`
	Events  int           `json:"events"`
	Files   []fileOutcome `json:"files"`
	Warning string        `json:"warning,omitempty"`
}

// Ingest reads the uploaded multipart files, extracts and reconciles them,
// and returns the run ID a caller uses against /reports/:runId/....
func (h *WorkbookHandler) Ingest(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart/form-data with one or more workbook files"})
		return
	}
	uploaded := form.File["files"]
	if len(uploaded) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files under form field \"files\""})
		return
	}

	files := make([]ingest.FileInput, 0, len(uploaded))
	for _, fh := range uploaded {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open " + fh.Filename})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + fh.Filename})
			return
		}
		files = append(files, ingest.FileInput{Filename: fh.Filename, Data: data})
	}

	batch, err := ingest.Batch(c.Request.Context(), files, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	events := reconciler.Reconcile(batch.Snapshots)
	runID := uuid.NewString()
	h.store.Put(runID, events)

	outcomes := make([]fileOutcome, len(batch.Results))
	for i, r := range batch.Results {
		outcomes[i] = fileOutcome{Filename: r.Filename, Snapshots: len(r.Snapshots)}
		if r.Err != nil {
			outcomes[i].Error = r.Err.Error()
		}
	}

	resp := ingestResponse{RunID: runID, Events: len(events), Files: outcomes}
	if len(batch.Snapshots) == 0 {
		resp.Warning = apierrors.ErrEmptyInput.Message
	}
	c.JSON(http.StatusOK, resp)
}

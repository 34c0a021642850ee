package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openmuseum/collections-import/internal/entities"
	"github.com/openmuseum/collections-import/internal/store"
)

// ImportStatusResponse is the progress view of one import checkpoint.
type ImportStatusResponse struct {
	ImportType      string     `json:"importType"`
	IsFinished      bool       `json:"isFinished"`
	CurrentOffset   int        `json:"currentOffset"`
	CachedKeys      int        `json:"cachedKeys"`
	Remaining       int        `json:"remaining"`
	CachedAt        *time.Time `json:"cachedAt,omitempty"`
	PreviousDateRun *time.Time `json:"previousDateRun,omitempty"`
}

type ImportsController struct {
	checkpoints *store.Checkpoints
}

func NewImportsController(checkpoints *store.Checkpoints) *ImportsController {
	return &ImportsController{checkpoints: checkpoints}
}

// List reports every import job's checkpoint state.
func (i *ImportsController) List(c *gin.Context) {
	statuses, err := i.checkpoints.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]ImportStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		resp = append(resp, toStatusResponse(status))
	}
	c.IndentedJSON(http.StatusOK, resp)
}

func toStatusResponse(status entities.ImportStatus) ImportStatusResponse {
	return ImportStatusResponse{
		ImportType:      status.ImportType,
		IsFinished:      status.IsFinished,
		CurrentOffset:   status.CurrentOffset,
		CachedKeys:      len(status.CachedResult),
		Remaining:       status.Remaining(),
		CachedAt:        status.CachedResultDate,
		PreviousDateRun: status.PreviousDateRun,
	}
}

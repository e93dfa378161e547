package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/exilemarket/item-price-scanner/internal/store"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

const defaultJobHistory = 20

// JobsHandler handles scheduled job run queries.
type JobsHandler struct {
	store store.Store
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s store.Store) *JobsHandler {
	return &JobsHandler{store: s}
}

// --- Input/Output types ---

// GetJobHistoryInput is the input for a job run history query.
type GetJobHistoryInput struct {
	Name  string `path:"name"   doc:"Job name"                       enum:"prepare"`
	Limit int    `query:"limit" doc:"Number of runs (default 20)"    minimum:"1" maximum:"100"`
}

// GetJobHistoryOutput is the response for a job run history query.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

// --- Handlers ---

// GetJobHistory returns the most recent runs for a scheduled job.
func (h *JobsHandler) GetJobHistory(
	ctx context.Context,
	input *GetJobHistoryInput,
) (*GetJobHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultJobHistory
	}

	runs, err := h.store.ListJobRuns(ctx, input.Name, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("job query failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return &GetJobHistoryOutput{Body: runs}, nil
}

// RegisterJobRoutes registers job run endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{name}",
		Summary:     "Get a job's run history",
		Description: "Returns the most recent runs for a scheduled job, newest first.",
		Tags:        []string{"jobs"},
	}, h.GetJobHistory)
}

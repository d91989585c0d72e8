package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

const defaultJobListLimit = 20

// JobsHandler handles job inspection endpoints.
type JobsHandler struct {
	store store.Store
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s store.Store) *JobsHandler {
	return &JobsHandler{store: s}
}

// ListJobsInput is the input for listing jobs.
type ListJobsInput struct {
	Type  string `query:"type"  doc:"Filter by job type" enum:"refresh_scores,run_alert,"`
	Limit int    `query:"limit" doc:"Number of results (default 20)" minimum:"1" maximum:"200"`
}

// ListJobsOutput is the response for listing jobs.
type ListJobsOutput struct {
	Body []domain.Job
}

// JobIDInput identifies one job by UUID.
type JobIDInput struct {
	ID string `path:"id" doc:"Job UUID"`
}

// JobOutput is the response carrying a single job.
type JobOutput struct {
	Body domain.Job
}

// ListJobs returns jobs newest first, optionally filtered by type.
func (h *JobsHandler) ListJobs(
	ctx context.Context,
	input *ListJobsInput,
) (*ListJobsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultJobListLimit
	}

	jobs, err := h.store.ListJobs(ctx, input.Type, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs: " + err.Error())
	}

	if jobs == nil {
		jobs = []domain.Job{}
	}

	return &ListJobsOutput{Body: jobs}, nil
}

// GetJob returns a single job by ID.
func (h *JobsHandler) GetJob(
	ctx context.Context,
	input *JobIDInput,
) (*JobOutput, error) {
	job, err := h.store.GetJob(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("job not found")
		}
		return nil, huma.Error500InternalServerError("fetching job: " + err.Error())
	}

	return &JobOutput{Body: *job}, nil
}

// RegisterJobRoutes registers job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List jobs",
		Description: "Returns job records newest first, optionally filtered by type.",
		Tags:        []string{"jobs"},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{id}",
		Summary:     "Get a job",
		Description: "Returns a single job with its status, parameters, and result.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetJob)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"arbitrack/internal/engine"
	"arbitrack/internal/metrics"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// RefreshHandler handles manual score refresh requests.
type RefreshHandler struct {
	store store.Store
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(s store.Store) *RefreshHandler {
	return &RefreshHandler{store: s}
}

// RefreshInput is the request body for triggering a refresh.
type RefreshInput struct {
	Body struct {
		Marketplace string `json:"marketplace,omitempty" doc:"Restrict the refresh to one marketplace" example:"FR"`
	}
}

// RefreshOutput is the response for triggering a refresh.
type RefreshOutput struct {
	Body domain.Job
}

// Refresh enqueues a score refresh job and returns the job record.
func (h *RefreshHandler) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	params, err := json.Marshal(engine.RefreshParams{Marketplace: input.Body.Marketplace})
	if err != nil {
		return nil, huma.Error500InternalServerError("encoding job params: " + err.Error())
	}

	job, err := h.store.EnqueueJob(ctx, domain.JobRefreshScores, params)
	if err != nil {
		return nil, huma.Error500InternalServerError("enqueueing job: " + err.Error())
	}

	metrics.JobsEnqueuedTotal.WithLabelValues(string(domain.JobRefreshScores)).Inc()

	return &RefreshOutput{Body: *job}, nil
}

// RegisterRefreshRoutes registers the refresh endpoint with the Huma API.
func RegisterRefreshRoutes(api huma.API, h *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "refresh-scores",
		Method:        http.MethodPost,
		Path:          "/api/v1/refresh",
		Summary:       "Refresh scores",
		Description:   "Enqueues a score recomputation job and returns the job record for polling.",
		Tags:          []string{"scores"},
		DefaultStatus: http.StatusAccepted,
		Errors:        []int{http.StatusInternalServerError},
	}, h.Refresh)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"arbitrack/internal/engine"
	"arbitrack/internal/metrics"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// AlertsHandler handles alert CRUD and evaluation endpoints.
type AlertsHandler struct {
	store store.Store
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s store.Store) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// AlertBody is the writable portion of an alert.
type AlertBody struct {
	Name        string              `json:"name"                  minLength:"1" doc:"Alert name" example:"high-roi"`
	Description string              `json:"description,omitempty"               doc:"Free-form description"`
	Filters     domain.AlertFilters `json:"filters"                             doc:"Filter predicates the alert matches against"`
	Active      *bool               `json:"active,omitempty"                    doc:"Whether the alert can be run (default true)"`
}

// ListAlertsInput is the input for listing alerts.
type ListAlertsInput struct {
	Active bool `query:"active" doc:"Return only active alerts"`
}

// ListAlertsOutput is the response for listing alerts.
type ListAlertsOutput struct {
	Body []domain.Alert
}

// AlertIDInput identifies one alert by UUID.
type AlertIDInput struct {
	ID string `path:"id" doc:"Alert UUID"`
}

// AlertOutput is the response carrying a single alert.
type AlertOutput struct {
	Body domain.Alert
}

// CreateAlertInput is the input for creating an alert.
type CreateAlertInput struct {
	Body AlertBody
}

// UpdateAlertInput is the input for updating an alert.
type UpdateAlertInput struct {
	ID   string `path:"id" doc:"Alert UUID"`
	Body AlertBody
}

// SetAlertActiveInput is the input for toggling an alert.
type SetAlertActiveInput struct {
	ID   string `path:"id" doc:"Alert UUID"`
	Body struct {
		Active bool `json:"active" doc:"New active state"`
	}
}

// RunAlertOutput is the response for triggering an alert evaluation.
type RunAlertOutput struct {
	Body domain.Job
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// ListAlerts returns all alerts, optionally restricted to active ones.
func (h *AlertsHandler) ListAlerts(
	ctx context.Context,
	input *ListAlertsInput,
) (*ListAlertsOutput, error) {
	alerts, err := h.store.ListAlerts(ctx, input.Active)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing alerts: " + err.Error())
	}

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return &ListAlertsOutput{Body: alerts}, nil
}

// GetAlert returns a single alert by ID.
func (h *AlertsHandler) GetAlert(
	ctx context.Context,
	input *AlertIDInput,
) (*AlertOutput, error) {
	a, err := h.store.GetAlert(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("fetching alert: " + err.Error())
	}

	return &AlertOutput{Body: *a}, nil
}

// CreateAlert creates a new alert.
func (h *AlertsHandler) CreateAlert(
	ctx context.Context,
	input *CreateAlertInput,
) (*AlertOutput, error) {
	a := domain.Alert{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Filters:     input.Body.Filters,
		Active:      true,
	}
	if input.Body.Active != nil {
		a.Active = *input.Body.Active
	}

	if err := h.store.CreateAlert(ctx, &a); err != nil {
		return nil, huma.Error500InternalServerError("creating alert: " + err.Error())
	}

	return &AlertOutput{Body: a}, nil
}

// UpdateAlert replaces an alert's writable fields.
func (h *AlertsHandler) UpdateAlert(
	ctx context.Context,
	input *UpdateAlertInput,
) (*AlertOutput, error) {
	existing, err := h.store.GetAlert(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("fetching alert: " + err.Error())
	}

	existing.Name = input.Body.Name
	existing.Description = input.Body.Description
	existing.Filters = input.Body.Filters
	if input.Body.Active != nil {
		existing.Active = *input.Body.Active
	}

	if err := h.store.UpdateAlert(ctx, existing); err != nil {
		return nil, huma.Error500InternalServerError("updating alert: " + err.Error())
	}

	return &AlertOutput{Body: *existing}, nil
}

// SetAlertActive toggles an alert's active flag.
func (h *AlertsHandler) SetAlertActive(
	ctx context.Context,
	input *SetAlertActiveInput,
) (*StatusOutput, error) {
	if err := h.store.SetAlertActive(ctx, input.ID, input.Body.Active); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("setting alert active: " + err.Error())
	}

	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// DeleteAlert deletes an alert by ID.
func (h *AlertsHandler) DeleteAlert(
	ctx context.Context,
	input *AlertIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteAlert(ctx, input.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("deleting alert: " + err.Error())
	}

	return &struct{}{}, nil
}

// RunAlert enqueues an evaluation job for an alert. The alert must exist and
// be active; both are checked before anything is queued.
func (h *AlertsHandler) RunAlert(
	ctx context.Context,
	input *AlertIDInput,
) (*RunAlertOutput, error) {
	alert, err := h.store.GetAlert(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("alert not found")
		}
		return nil, huma.Error500InternalServerError("fetching alert: " + err.Error())
	}

	if !alert.Active {
		return nil, huma.Error409Conflict("alert " + alert.Name + " is inactive")
	}

	params, err := json.Marshal(engine.AlertParams{AlertID: alert.ID})
	if err != nil {
		return nil, huma.Error500InternalServerError("encoding job params: " + err.Error())
	}

	job, err := h.store.EnqueueJob(ctx, domain.JobRunAlert, params)
	if err != nil {
		return nil, huma.Error500InternalServerError("enqueueing job: " + err.Error())
	}

	metrics.JobsEnqueuedTotal.WithLabelValues(string(domain.JobRunAlert)).Inc()

	return &RunAlertOutput{Body: *job}, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alerts",
		Tags:        []string{"alerts"},
	}, h.ListAlerts)

	huma.Register(api, huma.Operation{
		OperationID: "get-alert",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Get an alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAlert)

	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts",
		Summary:       "Create an alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateAlert)

	huma.Register(api, huma.Operation{
		OperationID: "update-alert",
		Method:      http.MethodPut,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Update an alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateAlert)

	huma.Register(api, huma.Operation{
		OperationID: "set-alert-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/alerts/{id}/active",
		Summary:     "Enable or disable an alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetAlertActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-alert",
		Method:        http.MethodDelete,
		Path:          "/api/v1/alerts/{id}",
		Summary:       "Delete an alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteAlert)

	huma.Register(api, huma.Operation{
		OperationID:   "run-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts/{id}/run",
		Summary:       "Run an alert",
		Description:   "Enqueues an evaluation job for an active alert and returns the job record.",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusAccepted,
		Errors:        []int{http.StatusNotFound, http.StatusConflict},
	}, h.RunAlert)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/grievance"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
)

const EventGrievanceSubmitted = "grievance.submitted"

type GrievanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type grievanceHandlerImpl struct {
	grievanceService grievance.GrievanceService
	events           eventPublisher
}

func NewGrievanceHandler(grievanceService grievance.GrievanceService, events eventPublisher) GrievanceHandler {
	return &grievanceHandlerImpl{
		grievanceService: grievanceService,
		events:           publisherOrNoop(events),
	}
}

// Submit implements GrievanceHandler.
func (h *grievanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req grievance.SubmitGrievanceRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("SubmitGrievance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	empID, err := resolveEmployeeID(r, req.EmpID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmpID = empID

	result, err := h.grievanceService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.events.Publish(sse.Event{Topic: sse.TopicAdmin, Event: EventGrievanceSubmitted, Data: result})
	response.Created(w, "Grievance submitted successfully", result)
}

// List implements GrievanceHandler.
func (h *grievanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter grievance.GrievanceFilter
	if status := queryParam(r, "status"); status != "" {
		s := grievance.GrievanceStatus(status)
		filter.Status = &s
	}
	filter.Page, filter.Limit = parsePagination(r)

	result, err := h.grievanceService.ListGrievances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements GrievanceHandler.
func (h *grievanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req grievance.UpdateGrievanceRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateGrievance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.grievanceService.UpdateGrievance(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grievance updated successfully", result)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
)

const EventLeaveApplied = "leave.applied"

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
	events       eventPublisher
}

func NewLeaveHandler(leaveService leave.LeaveService, events eventPublisher) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
		events:       publisherOrNoop(events),
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ApplyLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	empID, err := resolveEmployeeID(r, req.EmpID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmpID = empID

	result, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.events.Publish(sse.Event{Topic: sse.TopicAdmin, Event: EventLeaveApplied, Data: result})
	response.Created(w, "Leave application submitted", result)
}

// History implements LeaveHandler.
func (h *leaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	empID, err := resolveEmployeeID(r, chi.URLParam(r, "empId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.GetHistory(r.Context(), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Balance implements LeaveHandler.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	empID, err := resolveEmployeeID(r, chi.URLParam(r, "empId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.GetBalance(r.Context(), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{
		EmployeeID: optionalQuery(r, "empId", "emp_id"),
	}
	if status := queryParam(r, "status"); status != "" {
		s := leave.LeaveStatus(status)
		filter.Status = &s
	}
	filter.Page, filter.Limit = parsePagination(r)

	result, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Review implements LeaveHandler.
func (h *leaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req leave.ReviewLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ReviewLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.ReviewLeaveRequest(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(result.Status), result)
}

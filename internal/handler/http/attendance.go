package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/sse"
)

const (
	EventCheckedIn  = "attendance.checked_in"
	EventCheckedOut = "attendance.checked_out"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	events            eventPublisher
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, events eventPublisher) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		events:            publisherOrNoop(events),
	}
}

// actionRequest decodes the body and pins the employee id to the caller.
func (h *attendanceHandlerImpl) actionRequest(w http.ResponseWriter, r *http.Request) (attendance.AttendanceActionRequest, bool) {
	var req attendance.AttendanceActionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}

	employeeID, err := resolveEmployeeID(r, req.Employee())
	if err != nil {
		response.HandleError(w, err)
		return req, false
	}
	req.EmployeeID = employeeID
	req.EmpID = ""
	return req, true
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.events.Publish(sse.Event{Topic: sse.TopicAdmin, Event: EventCheckedIn, Data: result})
	response.SuccessWithMessage(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.events.Publish(sse.Event{Topic: sse.TopicAdmin, Event: EventCheckedOut, Data: result})
	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetTodayStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	filter := attendance.AttendanceFilter{
		EmployeeID: optionalQuery(r, "empId", "emp_id"),
		StartDate:  optionalQuery(r, "startDate", "start_date"),
		EndDate:    optionalQuery(r, "endDate", "end_date"),
	}
	filter.Page, filter.Limit = parsePagination(r)
	return filter
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements AttendanceHandler.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.attendanceService.ExportAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("20060102-150405"))
	response.File(w, filename, response.XLSXContentType, data)
}

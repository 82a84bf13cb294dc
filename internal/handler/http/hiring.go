package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/hiring"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
)

type HiringHandler interface {
	SubmitFeedback(w http.ResponseWriter, r *http.Request)
	ListFeedback(w http.ResponseWriter, r *http.Request)
	CreateJobPosting(w http.ResponseWriter, r *http.Request)
	ListJobPostings(w http.ResponseWriter, r *http.Request)
}

type hiringHandlerImpl struct {
	hiringService hiring.HiringService
}

func NewHiringHandler(hiringService hiring.HiringService) HiringHandler {
	return &hiringHandlerImpl{hiringService: hiringService}
}

// SubmitFeedback implements HiringHandler.
func (h *hiringHandlerImpl) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req hiring.SubmitFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("SubmitFeedback decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	empID, err := resolveEmployeeID(r, req.EmpID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmpID = empID

	result, err := h.hiringService.SubmitFeedback(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback submitted successfully", result)
}

// ListFeedback implements HiringHandler.
func (h *hiringHandlerImpl) ListFeedback(w http.ResponseWriter, r *http.Request) {
	result, err := h.hiringService.ListFeedback(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateJobPosting implements HiringHandler.
func (h *hiringHandlerImpl) CreateJobPosting(w http.ResponseWriter, r *http.Request) {
	var req hiring.CreateJobPostingRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateJobPosting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.hiringService.CreateJobPosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", result)
}

// ListJobPostings implements HiringHandler.
func (h *hiringHandlerImpl) ListJobPostings(w http.ResponseWriter, r *http.Request) {
	result, err := h.hiringService.ListActiveJobPostings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

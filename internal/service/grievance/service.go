package grievance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/grievance"
)

type GrievanceServiceImpl struct {
	grievance.GrievanceRepository
	now func() time.Time
}

func NewGrievanceService(grievanceRepo grievance.GrievanceRepository) grievance.GrievanceService {
	return &GrievanceServiceImpl{
		GrievanceRepository: grievanceRepo,
		now:                 time.Now,
	}
}

// Submit implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) Submit(ctx context.Context, req grievance.SubmitGrievanceRequest) (grievance.GrievanceResponse, error) {
	if err := req.Validate(); err != nil {
		return grievance.GrievanceResponse{}, err
	}

	created, err := s.GrievanceRepository.Create(ctx, grievance.Grievance{
		EmployeeID:    req.EmpID,
		GrievanceText: req.GrievanceText,
		Status:        grievance.GrievanceStatusOpen,
		SubmittedAt:   s.now(),
	})
	if err != nil {
		return grievance.GrievanceResponse{}, fmt.Errorf("failed to create grievance: %w", err)
	}

	slog.Info("Grievance submitted", "employee_id", created.EmployeeID, "grievance_id", created.ID)
	return mapGrievanceToResponse(created), nil
}

// ListGrievances implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) ListGrievances(ctx context.Context, filter grievance.GrievanceFilter) (grievance.ListGrievanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return grievance.ListGrievanceResponse{}, err
	}

	grievances, total, err := s.GrievanceRepository.List(ctx, filter)
	if err != nil {
		return grievance.ListGrievanceResponse{}, fmt.Errorf("failed to list grievances: %w", err)
	}

	responses := make([]grievance.GrievanceResponse, 0, len(grievances))
	for _, g := range grievances {
		responses = append(responses, mapGrievanceToResponse(g))
	}

	return grievance.ListGrievanceResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Grievances: responses,
	}, nil
}

// UpdateGrievance implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) UpdateGrievance(ctx context.Context, id string, req grievance.UpdateGrievanceRequest) (grievance.GrievanceResponse, error) {
	if err := req.Validate(); err != nil {
		return grievance.GrievanceResponse{}, err
	}

	updated, err := s.GrievanceRepository.UpdateStatus(ctx, id, req.Status, req.AdminResponse, s.now())
	if err != nil {
		if errors.Is(err, grievance.ErrGrievanceNotFound) {
			return grievance.GrievanceResponse{}, err
		}
		return grievance.GrievanceResponse{}, fmt.Errorf("failed to update grievance: %w", err)
	}

	slog.Info("Grievance updated", "grievance_id", id, "status", updated.Status)
	return mapGrievanceToResponse(updated), nil
}

func mapGrievanceToResponse(g grievance.Grievance) grievance.GrievanceResponse {
	return grievance.GrievanceResponse{
		ID:            g.ID,
		EmpID:         g.EmployeeID,
		GrievanceText: g.GrievanceText,
		Status:        g.Status,
		AdminResponse: g.AdminResponse,
		SubmittedAt:   g.SubmittedAt,
		ReviewedAt:    g.ReviewedAt,
	}
}

package grievance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/grievance"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu         sync.Mutex
	grievances []grievance.Grievance
}

func (m *memoryRepository) Create(ctx context.Context, g grievance.Grievance) (grievance.Grievance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = fmt.Sprintf("grv-%d", len(m.grievances)+1)
	m.grievances = append(m.grievances, g)
	return g, nil
}

func (m *memoryRepository) List(ctx context.Context, filter grievance.GrievanceFilter) ([]grievance.Grievance, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []grievance.Grievance
	for _, g := range m.grievances {
		if filter.Status == nil || g.Status == *filter.Status {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, int64(len(out)), nil
}

func (m *memoryRepository) UpdateStatus(ctx context.Context, id string, status grievance.GrievanceStatus, adminResponse string, reviewedAt time.Time) (grievance.Grievance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, g := range m.grievances {
		if g.ID == id {
			g.Status = status
			g.AdminResponse = &adminResponse
			g.ReviewedAt = &reviewedAt
			m.grievances[i] = g
			return g, nil
		}
	}
	return grievance.Grievance{}, grievance.ErrGrievanceNotFound
}

func newTestService() *GrievanceServiceImpl {
	clock := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return &GrievanceServiceImpl{
		GrievanceRepository: &memoryRepository{},
		now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	}
}

func TestSubmit(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Submit(context.Background(), grievance.SubmitGrievanceRequest{EmpID: "EMP001", GrievanceText: "  The AC is broken  "})
	require.NoError(t, err)
	assert.Equal(t, grievance.GrievanceStatusOpen, resp.Status)
	assert.Equal(t, "The AC is broken", resp.GrievanceText)

	_, err = svc.Submit(context.Background(), grievance.SubmitGrievanceRequest{EmpID: "EMP001"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "grievanceText")
}

func TestUpdateGrievance_DefaultsToUnderReview(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Submit(ctx, grievance.SubmitGrievanceRequest{EmpID: "EMP001", GrievanceText: "Parking"})
	require.NoError(t, err)

	updated, err := svc.UpdateGrievance(ctx, created.ID, grievance.UpdateGrievanceRequest{AdminResponse: "Looking into it"})
	require.NoError(t, err)
	assert.Equal(t, grievance.GrievanceStatusUnderReview, updated.Status)
	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "Looking into it", *updated.AdminResponse)

	_, err = svc.UpdateGrievance(ctx, created.ID, grievance.UpdateGrievanceRequest{Status: "Escalated"})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	_, err = svc.UpdateGrievance(ctx, "missing", grievance.UpdateGrievanceRequest{Status: grievance.GrievanceStatusResolved})
	assert.ErrorIs(t, err, grievance.ErrGrievanceNotFound)
}

func TestListGrievances_NewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, grievance.SubmitGrievanceRequest{EmpID: "EMP001", GrievanceText: "first"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, grievance.SubmitGrievanceRequest{EmpID: "EMP002", GrievanceText: "second"})
	require.NoError(t, err)

	resp, err := svc.ListGrievances(ctx, grievance.GrievanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalCount)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Grievances, 2)
	assert.Equal(t, "second", resp.Grievances[0].GrievanceText)
}

package grievance

import "context"

type GrievanceService interface {
	Submit(ctx context.Context, req SubmitGrievanceRequest) (GrievanceResponse, error)
	ListGrievances(ctx context.Context, filter GrievanceFilter) (ListGrievanceResponse, error)
	UpdateGrievance(ctx context.Context, id string, req UpdateGrievanceRequest) (GrievanceResponse, error)
}

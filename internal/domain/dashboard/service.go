package dashboard

import "context"

type DashboardService interface {
	GetAnalytics(ctx context.Context) (*AnalyticsResponse, error)
}

package dashboard

type MonthlyLeaveResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type AnalyticsResponse struct {
	TotalEmployees  int64                  `json:"totalEmployees"`
	PendingLeaves   int64                  `json:"pendingLeaves"`
	OpenGrievances  int64                  `json:"openGrievances"`
	TodayAttendance int64                  `json:"todayAttendance"`
	Date            string                 `json:"date"`
	MonthlyLeaves   []MonthlyLeaveResponse `json:"monthlyLeaves"`
}

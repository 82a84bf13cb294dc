package chatbot

import "time"

// AnonymousEmployee is logged when a query arrives without an empId.
const AnonymousEmployee = "anonymous"

type ChatLog struct {
	ID         string
	EmployeeID string
	Query      string
	Response   string
	Timestamp  time.Time
}

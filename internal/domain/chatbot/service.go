package chatbot

import "context"

type ChatbotService interface {
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
	PurgeExpiredLogs(ctx context.Context) error
}

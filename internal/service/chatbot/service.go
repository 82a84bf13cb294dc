package chatbot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/chatbot"
)

type ChatbotServiceImpl struct {
	chatbot.ChatLogRepository
	retention time.Duration
	now       func() time.Time
}

// NewChatbotService builds the assistant. Logs older than retention are
// removed by PurgeExpiredLogs; zero disables purging.
func NewChatbotService(chatLogRepo chatbot.ChatLogRepository, retention time.Duration) chatbot.ChatbotService {
	return &ChatbotServiceImpl{
		ChatLogRepository: chatLogRepo,
		retention:         retention,
		now:               time.Now,
	}
}

// Ask implements chatbot.ChatbotService.
func (s *ChatbotServiceImpl) Ask(ctx context.Context, req chatbot.AskRequest) (chatbot.AskResponse, error) {
	if err := req.Validate(); err != nil {
		return chatbot.AskResponse{}, err
	}

	answer := Respond(req.Query)

	_, err := s.ChatLogRepository.Create(ctx, chatbot.ChatLog{
		EmployeeID: req.Employee(),
		Query:      req.Query,
		Response:   answer,
		Timestamp:  s.now(),
	})
	if err != nil {
		return chatbot.AskResponse{}, fmt.Errorf("failed to log chat interaction: %w", err)
	}

	return chatbot.AskResponse{Response: answer}, nil
}

// PurgeExpiredLogs implements chatbot.ChatbotService.
func (s *ChatbotServiceImpl) PurgeExpiredLogs(ctx context.Context) error {
	if s.retention <= 0 {
		return nil
	}

	cutoff := s.now().Add(-s.retention)
	deleted, err := s.ChatLogRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge chat logs: %w", err)
	}
	if deleted > 0 {
		slog.Info("Purged expired chat logs", "deleted", deleted, "cutoff", cutoff)
	}
	return nil
}

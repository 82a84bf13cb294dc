package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/chatbot"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
)

type chatLogRepositoryImpl struct {
	db *database.DB
}

func NewChatLogRepository(db *database.DB) chatbot.ChatLogRepository {
	return &chatLogRepositoryImpl{db: db}
}

// Create implements chatbot.ChatLogRepository.
func (r *chatLogRepositoryImpl) Create(ctx context.Context, log chatbot.ChatLog) (chatbot.ChatLog, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return chatbot.ChatLog{}, fmt.Errorf("failed to generate chat log id: %w", err)
	}
	log.ID = id.String()

	_, err = q.Exec(ctx,
		`INSERT INTO chat_logs (id, emp_id, query, response, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		log.ID, log.EmployeeID, log.Query, log.Response, log.Timestamp,
	)
	if err != nil {
		return chatbot.ChatLog{}, fmt.Errorf("failed to create chat log: %w", err)
	}
	return log, nil
}

// DeleteOlderThan implements chatbot.ChatLogRepository.
func (r *chatLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM chat_logs WHERE timestamp < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete chat logs before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return commandTag.RowsAffected(), nil
}

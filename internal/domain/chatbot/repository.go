package chatbot

import (
	"context"
	"time"
)

type ChatLogRepository interface {
	Create(ctx context.Context, log ChatLog) (ChatLog, error)
	// DeleteOlderThan removes logs with a timestamp before cutoff and reports how many.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

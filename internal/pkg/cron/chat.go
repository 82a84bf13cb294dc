package cron

import (
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/chatbot"
)

const ChatLogPurgeJob = "chat-log-purge"

// RegisterChatLogPurge schedules deletion of chat logs past the service's retention window.
func RegisterChatLogPurge(s *Scheduler, svc chatbot.ChatbotService, interval time.Duration) {
	s.AddJob(Job{
		Name:     ChatLogPurgeJob,
		Interval: interval,
		Timeout:  time.Minute,
		Fn:       svc.PurgeExpiredLogs,
	})
}

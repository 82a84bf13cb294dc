package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/chatbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob(Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop")

	st, ok := s.Status("counter")
	require.True(t, ok)
	assert.GreaterOrEqual(t, st.Runs, 3)
	assert.NoError(t, st.LastErr)
}

func TestScheduler_RejectsNonPositiveInterval(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "broken", Fn: func(ctx context.Context) error { return nil }})

	_, ok := s.Status("broken")
	assert.False(t, ok)
}

func TestScheduler_RunOnceRecordsError(t *testing.T) {
	jobErr := errors.New("boom")
	s := NewScheduler()
	s.AddJob(Job{
		Name:     "failing",
		Interval: time.Hour,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			if !hasDeadline {
				return errors.New("expected a deadline")
			}
			return jobErr
		},
	})

	s.RunOnce(context.Background())

	st, ok := s.Status("failing")
	require.True(t, ok)
	assert.Equal(t, 1, st.Runs)
	assert.ErrorIs(t, st.LastErr, jobErr)
}

type purgeCounter struct {
	chatbot.ChatbotService
	calls atomic.Int32
}

func (p *purgeCounter) PurgeExpiredLogs(ctx context.Context) error {
	p.calls.Add(1)
	return nil
}

func TestRegisterChatLogPurge(t *testing.T) {
	svc := &purgeCounter{}
	s := NewScheduler()
	RegisterChatLogPurge(s, svc, time.Hour)

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), svc.calls.Load())
	st, ok := s.Status(ChatLogPurgeJob)
	require.True(t, ok)
	assert.Equal(t, 1, st.Runs)
}

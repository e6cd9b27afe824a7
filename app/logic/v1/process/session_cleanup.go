package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/saas-journey/journey/pkg/register"
	"github.com/saas-journey/journey/pkg/safe"
)

func init() {
	register.RegisterFunc[*Process](ProcessKey{}, func(p *Process) {
		// 每小时清理一次过期会话
		if _, err := p.cron.AddFunc("@hourly", func() {
			safe.Run(func() {
				NewSessionCleanupTask(p).Run(context.Background())
			})
		}); err != nil {
			panic(err)
		}
	})
}

// SessionCleanupTask 过期会话清理任务
type SessionCleanupTask struct {
	p *Process
}

func NewSessionCleanupTask(p *Process) *SessionCleanupTask {
	return &SessionCleanupTask{p: p}
}

// Run 删除所有已过期的会话记录
func (t *SessionCleanupTask) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	swept, err := t.p.Core().Store().SessionStore().DeleteExpired(ctx, time.Now().Unix())
	if err != nil {
		slog.Error("Failed to cleanup expired sessions", slog.Any("error", err))
		return
	}

	if swept > 0 {
		t.p.Core().Metrics().SessionSweptAdd(swept)
		slog.Info("Expired sessions cleaned", slog.Int64("count", swept))
	}
}

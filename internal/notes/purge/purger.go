// Package purge содержит фоновую очистку корзины.
package purge

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// Константы для логирования.
const (
	LogPurgerStarted = "bin purger started"
	LogPurgerStopped = "bin purger stopped"
	ErrPurgeFailed   = "bin purge pass failed"
)

// Purger периодически запускает очистку корзины.
type Purger struct {
	binUseCase    *app.BinUseCase
	retentionDays int
	interval      time.Duration
	stop          chan struct{}
	done          chan struct{}
}

// New создает новый Purger.
func New(binUseCase *app.BinUseCase, retentionDays int, interval time.Duration) *Purger {
	return &Purger{
		binUseCase:    binUseCase,
		retentionDays: retentionDays,
		interval:      interval,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start запускает фоновый цикл очистки. Первый проход выполняется
// сразу, последующие по интервалу.
func (p *Purger) Start(ctx context.Context) {
	log := logger.Log(ctx)
	log.Info(ctx, LogPurgerStarted,
		zap.Int("retention_days", p.retentionDays),
		zap.Duration("interval", p.interval))

	go func() {
		defer close(p.done)

		p.runOnce(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.runOnce(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop останавливает цикл очистки и дожидается завершения текущего прохода.
func (p *Purger) Stop(ctx context.Context) {
	close(p.stop)
	select {
	case <-p.done:
	case <-ctx.Done():
	}
	logger.Log(ctx).Info(ctx, LogPurgerStopped)
}

func (p *Purger) runOnce(ctx context.Context) {
	if _, err := p.binUseCase.PurgeExpired(ctx, p.retentionDays); err != nil {
		logger.Log(ctx).Error(ctx, ErrPurgeFailed, zap.Error(err))
	}
}

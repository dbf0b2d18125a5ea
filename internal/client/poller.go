package client

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultPollInterval Как часто игрок спрашивает историю
const DefaultPollInterval = 2 * time.Second

// Poller Периодически забирает историю и отдает ее наблюдателю.
// Неудачный опрос оставляет прежний кеш до следующего тика
type Poller struct {
	fetcher  StatusFetcher
	observer *Observer
	clock    quartz.Clock
	interval time.Duration
	logger   *log.Logger
}

func NewPoller(fetcher StatusFetcher, observer *Observer, clock quartz.Clock, interval time.Duration, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		fetcher:  fetcher,
		observer: observer,
		clock:    clock,
		interval: interval,
		logger:   logger.WithPrefix("poller"),
	}
}

// Run Опрашивает сразу и затем каждые interval, пока ctx не отменен
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval, "poller")
	defer ticker.Stop()

	p.Poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll Один опрос. Ошибка не прерывает работу
func (p *Poller) Poll(ctx context.Context) {
	drawn, err := p.fetcher.FetchDrawn(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Debug("poll failed, keeping cached numbers", "err", err)
		}
		return
	}

	res := p.observer.Update(drawn)
	p.logger.Debug("polled", "drawn", len(drawn), "lines", res.Lines)
}

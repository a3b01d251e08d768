package api

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunJanitor sweeps expired previews and sessions every interval until ctx
// is cancelled.
func (app *App) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			app.Sweep(now)
		}
	}
}

func (app *App) Sweep(now time.Time) {
	cutoff := now.Add(-app.PreviewTTL)

	files, err := app.Storage.Sweep(cutoff)
	if err != nil {
		app.log().Warn("sweeping previews", zap.Error(err))
	}
	sessions := app.Sessions.Sweep(cutoff)

	if files > 0 || sessions > 0 {
		app.log().Debug("swept expired data", zap.Int("previews", files), zap.Int("sessions", sessions))
	}
}

package app

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/i474232898/weather-app/internal/config"
	"github.com/i474232898/weather-app/internal/display"
	"github.com/i474232898/weather-app/internal/scheduler"
	"github.com/i474232898/weather-app/internal/session"
	"github.com/i474232898/weather-app/internal/weather/providers"
)

// NewSession wires the OpenWeatherMap client and a fresh presenter.
func NewSession(cfg *config.AppConfig, logger *zap.Logger) *session.Session {
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, logger)
	presenter := display.NewPresenter(cfg.DefaultUnit)
	return session.New(provider, presenter, logger)
}

// NewRefreshScheduler returns a scheduler that re-submits the last city
// every cfg.RefreshInterval. It is inert when the interval is zero.
func NewRefreshScheduler(sess *session.Session, cfg *config.AppConfig, logger *zap.Logger) *scheduler.Scheduler {
	// Leave headroom over the request timeout so the client, not the job, times out.
	return scheduler.New(sessionRefresher(sess), cfg.RefreshInterval, 2*cfg.HTTPTimeout, logger)
}

// sessionRefresher reports a refresh that ended in the error view as a failed run.
func sessionRefresher(sess *session.Session) scheduler.RefresherFunc {
	return func(ctx context.Context) (bool, error) {
		v, ok := sess.Refresh(ctx)
		if ok && v.State == display.StateError {
			return true, errors.New(v.ErrorMessage)
		}
		return ok, nil
	}
}

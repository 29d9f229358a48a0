package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/i474232898/weather-app/internal/display"
	"github.com/i474232898/weather-app/internal/weather"
)

// Session connects one weather.Fetcher to one display.Presenter. Fetches are
// serialized: at most one request is in flight and each result is applied to
// the presenter before the next fetch starts. Waiting submits are not
// ordered by arrival.
type Session struct {
	fetchMu sync.Mutex // held for the duration of a fetch

	mu        sync.RWMutex
	lastCity  string
	onRefresh []func(display.View)

	fetcher   weather.Fetcher
	presenter *display.Presenter
	logger    *zap.Logger
}

// New creates a new Session.
func New(fetcher weather.Fetcher, presenter *display.Presenter, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		fetcher:   fetcher,
		presenter: presenter,
		logger:    logger,
	}
}

// Submit fetches the weather for city and updates the presenter with the
// outcome. The city is passed through untouched.
func (s *Session) Submit(ctx context.Context, city string) display.View {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	s.mu.Lock()
	s.lastCity = city
	s.mu.Unlock()

	log := s.logger.With(
		zap.String("fetch_id", uuid.NewString()),
		zap.String("city", city),
	)

	reading, err := s.fetcher.Fetch(ctx, city)
	if err != nil {
		fe := weather.AsFetchError(err)
		log.Info("weather fetch failed",
			zap.Stringer("kind", fe.Kind),
			zap.Int("status", fe.Status),
			zap.String("detail", fe.Detail),
		)
		s.presenter.SetError(fe)
		return s.presenter.View()
	}

	log.Info("weather fetched",
		zap.Float64("temperature_k", reading.TemperatureK),
		zap.Int("condition_code", reading.ConditionCode),
	)
	s.presenter.SetReading(reading)
	return s.presenter.View()
}

// Refresh re-submits the last city and passes the resulting view to every
// OnRefresh observer. It reports false if nothing has been submitted yet.
func (s *Session) Refresh(ctx context.Context) (display.View, bool) {
	city := s.LastCity()
	if city == "" {
		return s.presenter.View(), false
	}

	v := s.Submit(ctx, city)

	s.mu.RLock()
	observers := append([]func(display.View){}, s.onRefresh...)
	s.mu.RUnlock()
	for _, fn := range observers {
		fn(v)
	}
	return v, true
}

// OnRefresh registers fn to be called with the new view after each
// background refresh. fn runs on the refreshing goroutine.
func (s *Session) OnRefresh(fn func(display.View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = append(s.onRefresh, fn)
}

// ToggleUnit flips the display unit. It never fetches.
func (s *Session) ToggleUnit() display.View {
	if !s.presenter.ToggleUnit() {
		s.logger.Debug("unit toggle ignored; no reading shown")
	}
	return s.presenter.View()
}

func (s *Session) View() display.View {
	return s.presenter.View()
}

func (s *Session) LastCity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCity
}

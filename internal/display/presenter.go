package display

import (
	"sync"

	"github.com/i474232898/weather-app/internal/weather"
)

// State is the presenter's current mode.
type State string

const (
	StateEmpty   State = "empty"
	StateShowing State = "showing"
	StateError   State = "error"
)

// View is everything a front end needs to draw the current state.
type View struct {
	State         State  `json:"state"`
	Unit          string `json:"unit"`
	Temperature   string `json:"temperature"`
	Emoji         string `json:"emoji"`
	Description   string `json:"description"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	ToggleVisible bool   `json:"toggleVisible"`
	ToggleLabel   string `json:"toggleLabel,omitempty"`
}

// Presenter holds at most one of: the last reading, or the last error.
// The display unit survives both. It does no I/O.
type Presenter struct {
	mu      sync.RWMutex
	unit    Unit
	reading *weather.Reading
	err     *weather.FetchError
}

// NewPresenter returns a presenter in the empty state.
func NewPresenter(unit Unit) *Presenter {
	return &Presenter{unit: unit}
}

// SetReading shows r in the current unit and clears any error.
func (p *Presenter) SetReading(r weather.Reading) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reading = &r
	p.err = nil
}

// SetError shows err and drops any held reading.
func (p *Presenter) SetError(err *weather.FetchError) {
	if err == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	p.reading = nil
}

// ToggleUnit flips Celsius/Fahrenheit while a reading is shown. It reports
// whether anything changed; outside the showing state it is a no-op.
func (p *Presenter) ToggleUnit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reading == nil {
		return false
	}
	p.unit = p.unit.Other()
	return true
}

func (p *Presenter) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stateLocked()
}

func (p *Presenter) stateLocked() State {
	switch {
	case p.reading != nil:
		return StateShowing
	case p.err != nil:
		return StateError
	default:
		return StateEmpty
	}
}

func (p *Presenter) Unit() Unit {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unit
}

// RenderTemperature returns e.g. "10°C", or "" when no reading is shown.
func (p *Presenter) RenderTemperature() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.reading == nil {
		return ""
	}
	return FormatTemperature(p.reading.TemperatureK, p.unit)
}

// RenderErrorMessage returns the user-facing error text, or "".
func (p *Presenter) RenderErrorMessage() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.err == nil {
		return ""
	}
	return p.err.Message()
}

// View snapshots the presenter for rendering.
func (p *Presenter) View() View {
	p.mu.RLock()
	defer p.mu.RUnlock()

	v := View{
		State: p.stateLocked(),
		Unit:  p.unit.String(),
	}
	switch v.State {
	case StateShowing:
		v.Temperature = FormatTemperature(p.reading.TemperatureK, p.unit)
		v.Emoji = Emoji(p.reading.ConditionCode)
		v.Description = FormatDescription(p.reading.Description)
		v.ToggleVisible = true
		v.ToggleLabel = "/" + p.unit.Other().Symbol()
	case StateError:
		v.ErrorMessage = p.err.Message()
	}
	return v
}

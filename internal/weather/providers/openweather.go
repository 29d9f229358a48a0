package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/i474232898/weather-app/internal/weather"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

const currentWeatherPath = "/weather"

// OpenWeatherProvider implements weather.Fetcher for OpenWeatherMap.
// It makes exactly one attempt per Fetch; there is no retry or backoff.
type OpenWeatherProvider struct {
	name   string
	apiKey string
	client *resty.Client
	logger *zap.Logger
}

// NewOpenWeatherProvider wraps client (whose Timeout bounds each request) in a
// resty client pointed at baseURL. The redirect policy of client is replaced.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string, logger *zap.Logger) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var rc *resty.Client
	if client != nil {
		rc = resty.NewWithClient(client).
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Accept", "application/json").
			SetRedirectPolicy(redirectLimit(maxRedirects)).
			SetLogger(logger.Sugar())
	}

	return &OpenWeatherProvider{
		name:   "openweathermap",
		apiKey: apiKey,
		client: rc,
		logger: logger,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// responseCode accepts the "cod" field as either a JSON number or a string;
// OpenWeatherMap uses both depending on the endpoint outcome.
type responseCode int

func (c *responseCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid cod %s: %w", b, err)
	}
	*c = responseCode(n)
	return nil
}

type currentWeatherPayload struct {
	Cod  responseCode `json:"cod"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
}

// Fetch performs a single blocking GET for city. Every failure is returned
// as a *weather.FetchError.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, city string) (weather.Reading, error) {
	if p.client == nil {
		return weather.Reading{}, weather.NewRequestError(weather.KindOtherRequest, errNoHTTPClient)
	}
	if p.apiKey == "" {
		return weather.Reading{}, weather.NewRequestError(weather.KindOtherRequest, errNoAPIKey)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": p.apiKey,
		}).
		Get(currentWeatherPath)
	if err != nil {
		kind := classifyTransportError(err)
		cause := scrubTransportError(err, p.apiKey)
		p.logger.Debug("openweather request failed",
			zap.String("city", city),
			zap.Stringer("kind", kind),
			zap.Error(cause),
		)
		return weather.Reading{}, weather.NewRequestError(kind, cause)
	}

	status := resp.StatusCode()
	p.logger.Debug("openweather response",
		zap.String("city", city),
		zap.Int("status", status),
		zap.Duration("elapsed", resp.Time()),
	)

	if status < 200 || status >= 300 {
		return weather.Reading{}, weather.NewHTTPError(status, httpErrorDetail(status))
	}

	return decodeCurrentWeather(status, resp.Body())
}

func decodeCurrentWeather(status int, body []byte) (weather.Reading, error) {
	var payload currentWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.Reading{}, weather.NewRequestError(weather.KindOtherRequest,
			fmt.Errorf("decode weather response: %w", err))
	}

	if status != http.StatusOK || payload.Cod != http.StatusOK {
		return weather.Reading{}, weather.NewRequestError(weather.KindOtherRequest,
			fmt.Errorf("unexpected response: status %d, cod %d", status, payload.Cod))
	}
	if payload.Main == nil || len(payload.Weather) == 0 {
		return weather.Reading{}, weather.NewRequestError(weather.KindOtherRequest,
			errors.New("invalid weather data format: missing main or weather"))
	}

	return weather.Reading{
		TemperatureK:  payload.Main.Temp,
		ConditionCode: payload.Weather[0].ID,
		Description:   payload.Weather[0].Description,
	}, nil
}

package weather

import "context"

// Fetcher abstracts a current-weather source (e.g. OpenWeatherMap).
// Implementations must return a *FetchError on every failure path.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (Reading, error)
}

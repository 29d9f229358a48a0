package weather

// Reading is the normalized result of a successful current-weather lookup.
// Temperature is kept in Kelvin, exactly as the upstream API reports it;
// conversion to a display unit happens in the presenter.
type Reading struct {
	TemperatureK  float64 `json:"temperatureK"`
	ConditionCode int     `json:"conditionCode"`
	Description   string  `json:"description"`
}

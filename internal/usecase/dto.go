package usecase

type ImportOutput struct {
	Imported int `json:"imported"`
}

type UpdateFieldInput struct {
	RecordID string `json:"record_id"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

type TemplateInput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type RenderedEmail struct {
	RecordID string `json:"record_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// RenderFailure is one record that could not be rendered or delivered.
// Failures are isolated; the rest of the batch proceeds.
type RenderFailure struct {
	RecordID string `json:"record_id"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
}

type CampaignOutput struct {
	Sent     int             `json:"sent"`
	Skipped  int             `json:"skipped"`
	Failures []RenderFailure `json:"failures,omitempty"`
}

type RateRow struct {
	Key       string  `json:"key"`
	Attempted int     `json:"attempted"`
	Yes       int     `json:"yes"`
	YesRate   float64 `json:"yes_rate"`
}

type AnalyticsOutput struct {
	Total     int       `json:"total"`
	Attempted int       `json:"attempted"`
	Yes       int       `json:"yes"`
	YesRate   float64   `json:"yes_rate"`
	ByCompany []RateRow `json:"by_company"`
	ByState   []RateRow `json:"by_state"`
	ByHour    []RateRow `json:"by_hour"`
	ByWeekday []RateRow `json:"by_weekday"`
}

package testutil

import (
	"github.com/heartmonitor/heartmonitor/api/internal/domain"
	"github.com/heartmonitor/heartmonitor/api/internal/dto"
)

// NewTestRequest returns the reference request: 180 cm, 75 kg, 30 years,
// male, medium frame. Its BMI is 23.1 and its unperturbed estimate 73 bpm.
func NewTestRequest() dto.PredictHeartRateRequest {
	return dto.PredictHeartRateRequest{
		Height:   180,
		Weight:   75,
		Age:      30,
		Gender:   "male",
		BodySize: "medium",
	}
}

// NewTestPayload returns NewTestRequest as an untyped payload, with any
// overrides applied. An override with a nil value removes the field.
func NewTestPayload(overrides map[string]any) map[string]any {
	payload := NewTestRequest().ToPayload()
	for k, v := range overrides {
		if v == nil {
			delete(payload, k)
			continue
		}
		payload[k] = v
	}
	return payload
}

// NewTestInput returns the normalized input matching NewTestRequest
func NewTestInput() domain.PredictionInput {
	return domain.PredictionInput{
		Height:   180,
		Weight:   75,
		Age:      30,
		Gender:   domain.GenderMale,
		BodySize: domain.BodySizeMedium,
	}
}

package dto

import "github.com/heartmonitor/heartmonitor/api/internal/domain"

// PredictionMessage is returned with every successful prediction
const PredictionMessage = "Heart rate predicted successfully"

// PredictHeartRateRequest documents the prediction request body.
// Handlers decode into map[string]any so presence and type errors can be
// reported per field; this type is used by clients.
type PredictHeartRateRequest struct {
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	BodySize string  `json:"bodySize"`
}

// ToPayload converts the request into the untyped form the validator accepts
func (r PredictHeartRateRequest) ToPayload() map[string]any {
	return map[string]any{
		domain.FieldHeight:   r.Height,
		domain.FieldWeight:   r.Weight,
		domain.FieldAge:      r.Age,
		domain.FieldGender:   r.Gender,
		domain.FieldBodySize: r.BodySize,
	}
}

// PredictionMetadata carries derived values alongside the estimate
type PredictionMetadata struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// PredictHeartRateResponse is the success body of the prediction endpoint
type PredictHeartRateResponse struct {
	HeartRate int                `json:"heartRate"`
	Message   string             `json:"message"`
	Metadata  PredictionMetadata `json:"metadata"`
}

// NewPredictHeartRateResponse builds the response body from a result
func NewPredictHeartRateResponse(r *domain.PredictionResult) PredictHeartRateResponse {
	return PredictHeartRateResponse{
		HeartRate: r.HeartRate,
		Message:   PredictionMessage,
		Metadata: PredictionMetadata{
			BMI:      r.BMI,
			Category: r.Category,
		},
	}
}

// ErrorResponse is the failure body for every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

package domain

// Accepted measurement ranges, inclusive on both ends.
const (
	HeightMinCM = 100.0
	HeightMaxCM = 250.0
	WeightMinKG = 30.0
	WeightMaxKG = 200.0
	AgeMinYears = 1
	AgeMaxYears = 120
)

// Heart rate bounds applied to every estimate
const (
	HeartRateMin = 50.0
	HeartRateMax = 120.0
)

// CategoryRestingHeartRate labels every prediction result
const CategoryRestingHeartRate = "resting_heart_rate"

// Prediction input field names, in the order they are checked
const (
	FieldHeight   = "height"
	FieldWeight   = "weight"
	FieldAge      = "age"
	FieldGender   = "gender"
	FieldBodySize = "bodySize"
)

// RequiredFields returns the prediction input fields in validation order
func RequiredFields() []string {
	return []string{FieldHeight, FieldWeight, FieldAge, FieldGender, FieldBodySize}
}

// PredictionInput holds validated, normalized body measurements
type PredictionInput struct {
	Height   float64  `json:"height" validate:"gte=100,lte=250"`
	Weight   float64  `json:"weight" validate:"gte=30,lte=200"`
	Age      int      `json:"age" validate:"gte=1,lte=120"`
	Gender   Gender   `json:"gender" validate:"oneof=male female"`
	BodySize BodySize `json:"bodySize" validate:"oneof=small medium large"`
}

// PredictionResult is the outcome of a single heart rate estimate
type PredictionResult struct {
	HeartRate   int         `json:"heartRate"`
	BMI         float64     `json:"bmi"`
	BMICategory BMICategory `json:"bmiCategory"`
	Category    string      `json:"category"`
}

// EstimateBreakdown lists each term that went into a heart rate estimate
type EstimateBreakdown struct {
	BMI          float64     `json:"bmi"`
	BMICategory  BMICategory `json:"bmiCategory"`
	Base         float64     `json:"base"`
	Age          float64     `json:"age"`
	Gender       float64     `json:"gender"`
	BMIFactor    float64     `json:"bmiFactor"`
	BodySize     float64     `json:"bodySize"`
	Raw          float64     `json:"raw"`
	Perturbation float64     `json:"perturbation"`
	Clamped      float64     `json:"clamped"`
	HeartRate    int         `json:"heartRate"`
}

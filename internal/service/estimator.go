package service

import (
	"math"
	"strconv"

	"github.com/heartmonitor/heartmonitor/api/internal/domain"
)

// Heart rate model terms
const (
	baseHeartRate  = 72.0
	agePerYear     = 0.1
	maleFactor     = -2.0
	femaleFactor   = 2.0
	underweightBPM = 5.0
	overweightBPM  = 4.0
	obeseBPM       = 8.0
	smallFrameBPM  = -3.0
	largeFrameBPM  = 3.0
)

// Estimator computes a resting heart rate estimate from validated measurements.
// It holds no mutable state and is safe for concurrent use as long as its
// Sampler is.
type Estimator struct {
	sampler Sampler
}

// NewEstimator creates an estimator. A nil sampler disables the perturbation.
func NewEstimator(sampler Sampler) *Estimator {
	if sampler == nil {
		sampler = FixedSampler(0)
	}
	return &Estimator{sampler: sampler}
}

// Estimate returns the heart rate, BMI and category for in.
// The caller guarantees in is within the accepted ranges.
func (e *Estimator) Estimate(in domain.PredictionInput) domain.PredictionResult {
	b := e.Breakdown(in)
	return domain.PredictionResult{
		HeartRate:   b.HeartRate,
		BMI:         RoundBMI(b.BMI),
		BMICategory: b.BMICategory,
		Category:    domain.CategoryRestingHeartRate,
	}
}

// Breakdown returns every term of the estimate. One perturbation is drawn per call.
func (e *Estimator) Breakdown(in domain.PredictionInput) domain.EstimateBreakdown {
	bmi := CalculateBMI(in.Height, in.Weight)
	category := domain.ClassifyBMI(bmi)

	b := domain.EstimateBreakdown{
		BMI:         bmi,
		BMICategory: category,
		Base:        baseHeartRate,
		Age:         float64(in.Age) * agePerYear,
		Gender:      genderFactor(in.Gender),
		BMIFactor:   bmiFactor(category),
		BodySize:    bodySizeFactor(in.BodySize),
	}
	b.Raw = b.Base + b.Age + b.Gender + b.BMIFactor + b.BodySize
	b.Perturbation = e.sampler.Sample()
	b.Clamped = clamp(b.Raw+b.Perturbation, domain.HeartRateMin, domain.HeartRateMax)
	b.HeartRate = int(math.RoundToEven(b.Clamped))
	return b
}

// CalculateBMI returns weight / (height in meters)^2
func CalculateBMI(heightCM, weightKG float64) float64 {
	heightM := heightCM / 100
	return weightKG / (heightM * heightM)
}

// RoundBMI rounds to one decimal place. Rounding works on the exact binary
// value of bmi, so 7.55 (stored as 7.5499999...) rounds down and exact
// ties such as 23.25 go to the even digit.
func RoundBMI(bmi float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(bmi, 'f', 1, 64), 64)
	if err != nil {
		return bmi
	}
	return rounded
}

func genderFactor(g domain.Gender) float64 {
	if g == domain.GenderMale {
		return maleFactor
	}
	return femaleFactor
}

func bmiFactor(c domain.BMICategory) float64 {
	switch c {
	case domain.BMICategoryUnderweight:
		return underweightBPM
	case domain.BMICategoryObese:
		return obeseBPM
	case domain.BMICategoryOverweight:
		return overweightBPM
	default:
		return 0
	}
}

func bodySizeFactor(s domain.BodySize) float64 {
	switch s {
	case domain.BodySizeSmall:
		return smallFrameBPM
	case domain.BodySizeLarge:
		return largeFrameBPM
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

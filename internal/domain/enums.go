package domain

// Gender represents the biological sex used by the estimator
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// AllowedGenders lists accepted gender values in display order
func AllowedGenders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// BodySize represents the self-reported frame size
type BodySize string

const (
	BodySizeSmall  BodySize = "small"
	BodySizeMedium BodySize = "medium"
	BodySizeLarge  BodySize = "large"
)

// IsValid checks if the body size is valid
func (b BodySize) IsValid() bool {
	switch b {
	case BodySizeSmall, BodySizeMedium, BodySizeLarge:
		return true
	}
	return false
}

// AllowedBodySizes lists accepted body size values in display order
func AllowedBodySizes() []BodySize {
	return []BodySize{BodySizeSmall, BodySizeMedium, BodySizeLarge}
}

// BMICategory represents the weight bracket derived from BMI
type BMICategory string

const (
	BMICategoryUnderweight BMICategory = "underweight"
	BMICategoryNormal      BMICategory = "normal"
	BMICategoryOverweight  BMICategory = "overweight"
	BMICategoryObese       BMICategory = "obese"
)

// ClassifyBMI returns the bracket for a BMI value.
// Brackets are checked in order and the first match wins, so a BMI above 30
// is obese and never overweight. Exactly 30 is overweight, exactly 25 is normal.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategoryUnderweight
	case bmi > 30:
		return BMICategoryObese
	case bmi > 25:
		return BMICategoryOverweight
	default:
		return BMICategoryNormal
	}
}

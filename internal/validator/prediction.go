package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/heartmonitor/heartmonitor/api/internal/domain"
	apperrors "github.com/heartmonitor/heartmonitor/api/internal/pkg/errors"
)

// Rules applied to the coerced prediction fields
const (
	heightRule = "gte=100,lte=250"
	weightRule = "gte=30,lte=200"
	ageRule    = "gte=1,lte=120"
)

// ValidatePrediction turns an untyped request payload into a PredictionInput.
//
// Checks run in a fixed order and the first failure is returned:
// presence of every field, numeric coercion of height, weight and age,
// then the range and enum rules in field order.
func ValidatePrediction(raw map[string]any) (*domain.PredictionInput, error) {
	for _, field := range domain.RequiredFields() {
		if _, ok := raw[field]; !ok {
			return nil, apperrors.MissingField(field)
		}
	}

	height, err := toFloat(raw[domain.FieldHeight])
	if err != nil {
		return nil, apperrors.InvalidFormat(domain.FieldHeight).WithError(err)
	}
	weight, err := toFloat(raw[domain.FieldWeight])
	if err != nil {
		return nil, apperrors.InvalidFormat(domain.FieldWeight).WithError(err)
	}
	age, err := toInt(raw[domain.FieldAge])
	if err != nil {
		return nil, apperrors.InvalidFormat(domain.FieldAge).WithError(err)
	}
	gender, ok := raw[domain.FieldGender].(string)
	if !ok {
		return nil, apperrors.InvalidFormat(domain.FieldGender)
	}
	bodySize, ok := raw[domain.FieldBodySize].(string)
	if !ok {
		return nil, apperrors.InvalidFormat(domain.FieldBodySize)
	}

	return checkPrediction(height, weight, age, strings.ToLower(gender), strings.ToLower(bodySize))
}

// Revalidate runs the range and enum checks against an already typed input.
// A normalized input that passed ValidatePrediction yields an equal copy.
func Revalidate(in domain.PredictionInput) (*domain.PredictionInput, error) {
	return checkPrediction(in.Height, in.Weight, in.Age,
		strings.ToLower(string(in.Gender)), strings.ToLower(string(in.BodySize)))
}

func checkPrediction(height, weight float64, age int, gender, bodySize string) (*domain.PredictionInput, error) {
	if V.Var(height, heightRule) != nil {
		return nil, apperrors.OutOfRange(domain.FieldHeight, domain.HeightMinCM, domain.HeightMaxCM, "cm")
	}
	if V.Var(weight, weightRule) != nil {
		return nil, apperrors.OutOfRange(domain.FieldWeight, domain.WeightMinKG, domain.WeightMaxKG, "kg")
	}
	if V.Var(age, ageRule) != nil {
		return nil, apperrors.OutOfRange(domain.FieldAge, domain.AgeMinYears, domain.AgeMaxYears, "years")
	}
	if !domain.Gender(gender).IsValid() {
		return nil, apperrors.InvalidEnum(domain.FieldGender, enumStrings(domain.AllowedGenders())...)
	}
	if !domain.BodySize(bodySize).IsValid() {
		return nil, apperrors.InvalidEnum(domain.FieldBodySize, enumStrings(domain.AllowedBodySizes())...)
	}

	return &domain.PredictionInput{
		Height:   height,
		Weight:   weight,
		Age:      age,
		Gender:   domain.Gender(gender),
		BodySize: domain.BodySize(bodySize),
	}, nil
}

// Numeric strings are read as base 10 only; cast would also accept
// prefixes like 0x and underscores.
var (
	decimalFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	decimalInt   = regexp.MustCompile(`^[+-]?\d+$`)
)

// toFloat coerces JSON numbers and decimal strings. null is rejected.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errNull
	case string:
		s := strings.TrimSpace(n)
		if !decimalFloat.MatchString(s) {
			return 0, errNotDecimal
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		// Out of range strings parse to ±Inf and fail the range check.
		return f, nil
	}
	return cast.ToFloat64E(v)
}

// toInt coerces JSON numbers and decimal integer strings. Fractional numbers
// truncate toward zero and leading zeros are ignored.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, errNull
	case float64:
		return saturate(n), nil
	case string:
		s := strings.TrimSpace(n)
		if !decimalInt.MatchString(s) {
			return 0, errNotDecimal
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		return saturate(float64(i)), nil
	}
	return cast.ToIntE(v)
}

// saturate clamps to the int32 range so huge values fail the range check
// instead of wrapping.
func saturate(n float64) int {
	if math.Abs(n) > math.MaxInt32 {
		return int(math.Copysign(math.MaxInt32, n))
	}
	return int(n)
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

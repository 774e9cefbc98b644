package validator

import "errors"

var (
	errNull       = errors.New("value is null")
	errNotDecimal = errors.New("value is not a decimal number")
)

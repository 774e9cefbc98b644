// Package dto contains Data Transfer Objects for HTTP request/response handling.
//
// DTOs keep the wire format of the heart rate API separate from the domain
// types. The prediction body is decoded untyped and handed to
// validator.ValidatePrediction so that missing and malformed fields can be
// reported one at a time in a fixed order.
package dto

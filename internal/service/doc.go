// Package service contains the business logic layer for the heart rate monitor.
//
// Estimator is a pure function of a validated domain.PredictionInput plus one
// random perturbation drawn from an injected Sampler. PredictionService puts
// the validator in front of it and records metrics for every outcome.
//
// # Determinism
//
// Production wires NewUniformSampler(DefaultPerturbation). Tests pass
// FixedSampler(0) to assert exact heart rates.
//
// # Rounding
//
// The final heart rate and the reported BMI both round half to even.
//
// # Thread Safety
//
// All services are safe for concurrent use from multiple goroutines.
package service

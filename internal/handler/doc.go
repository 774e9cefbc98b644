// Package handler contains HTTP request handlers for the heart rate monitor.
//
// Handlers decode requests, call the prediction service and map results to
// the JSON envelopes in package dto.
//
// # Routes
//
//   - POST /api/predict-heart-rate - heart rate estimate
//   - GET  /api/health             - service health report
//   - GET  /                       - discovery listing
//   - GET  /healthz, /livez, /version, /metrics, /docs - operational
//
// # Error Handling
//
// Input errors from the validator become 400 responses carrying the
// validator's message. Everything else becomes a 500 with a generic message.
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler

package common

// RequestIDHeaderName carries the per-request correlation id on HTTP
// requests and responses.
const RequestIDHeaderName = "X-Request-ID"

// HealthServiceName is the gRPC health-check service name of the equipment
// API.
const HealthServiceName = "tallerkeeper.Equipos"

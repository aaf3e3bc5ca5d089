// Package client talks to the equipment API: the JSON endpoints over HTTP
// and, optionally, the gRPC health service used as a liveness probe.
package client

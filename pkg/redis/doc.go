// Package redis establishes go-redis client connections with retry and
// exposes a healthcheck probe for readiness endpoints.
package redis

// Package pg wires pgx connection pooling, goose schema migrations, and
// Postgres error classification behind a small, config-driven API.
package pg

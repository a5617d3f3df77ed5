// Package mail renders and delivers transactional email in the background.
// The auth service enqueues messages through the Dispatcher; a worker pool
// handles delivery so request latency never depends on the mail provider,
// and delivery failures are only logged.
package mail

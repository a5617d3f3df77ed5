// Package email defines the outbound mail sender contract with two
// implementations: a Postmark transactional client for production and a
// file-based sender for development.
package email

// Package auth is the HTTP surface of the auth service: the /api/auth route
// table, JSON handlers answering with the shared response envelope, and the
// stateless session middleware.
package auth

// Package auth owns the credential store and every authentication flow:
// local signup with email verification, login with stateless JWT sessions,
// password reset, and Google federation.
//
// The service depends on narrow collaborator interfaces (Storage, Mailer,
// ProfileCache, StateStore, ProviderAdapter) so tests can substitute fakes.
// Challenge tokens are single-use: storage consumes them with a guarded
// update that clears the token atomically with the state change it
// authorizes, so concurrent attempts cannot both succeed and expired tokens
// are indistinguishable from never-issued ones.
package auth

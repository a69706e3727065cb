// Package validation holds the email shape check used by the credential
// screens and the small Require* helpers used to validate configuration.
package validation

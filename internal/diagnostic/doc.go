// Package diagnostic provides structured errors and warnings produced while
// validating a generator configuration.
//
// Key capabilities:
//   - Every configuration problem is collected, not just the first
//   - Each diagnostic carries a stable code and the config path it concerns
//   - Errors combine into a single error value for callers
package diagnostic

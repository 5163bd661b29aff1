// Package auth issues and validates the bearer tokens used by the
// /api/user and /api/logout endpoints, and verifies bcrypt password hashes.
package auth

// Package store defines the persistence contracts for tasks, posts, users
// and revoked tokens. Implementations live in internal/platform/postgres;
// services depend only on the interfaces declared here.
package store

// Package service contains the application use cases for tasks, posts and
// user accounts. Services coordinate domain values with the store
// interfaces and own transaction boundaries; they never depend on a
// specific database implementation.
package service

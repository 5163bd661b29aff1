// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// Tasks and posts are plain values: constructors validate their input,
// and partial updates go through Apply, which returns a new value rather
// than mutating the receiver. Status enumerations are declared once here
// and shared by every create and update path.
package domain

// Package domain defines the measurement records and contracts shared across
// the app. It contains plain types (records, the domain registry) and
// contracts (interfaces) only.
package domain

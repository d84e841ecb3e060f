// Package timezone provides time helpers for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Timestamps persisted in the store (UTC, millisecond ISO-8601):
//     stamp := timezone.ISOString(timezone.Now()) // "2024-01-01T09:30:00.000Z"
//
//  3. Calendar dates as submitted by the booking form:
//     day, err := timezone.ParseDate("2024-01-04")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone

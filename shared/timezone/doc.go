// Package timezone provides the application clock and calendar date helpers.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Calendar dates (bookings store check-in and check-out as YYYY-MM-DD):
//     d, err := timezone.ParseDate("2024-01-15")
//
// Calendar dates are normalised to midnight UTC so day arithmetic never crosses
// a daylight saving transition.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
package timezone

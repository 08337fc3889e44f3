// Package timezone keeps every calendar computation of the service in a
// single configured location (APP_TIMEZONE, default America/Bahia).
//
// Usage:
//
//	now := timezone.Now()
//	checkIn, err := timezone.Parse(constant.DateOnlyFormat, "2025-03-10")
//	nights := timezone.DaysBetween(checkIn, checkOut)
//	label := timezone.Format(checkIn, constant.DisplayDateFormat)
//
// The location is loaded when the package is imported. Unknown names fall
// back to UTC.
package timezone

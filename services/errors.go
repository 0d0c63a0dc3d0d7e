package services

import "errors"

// ErrInvalidDate is returned when a date parameter is not a valid
// YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

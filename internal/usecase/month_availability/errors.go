package month_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных year/month
	ErrInvalidInput = errors.New("month_availability: invalid input data")
)

package queries

import (
	"time"

	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

const minProfitYear = 1900

var (
	ErrGetProfitByMonthQueryIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
		"getProfitByMonth",
		guard.ErrDefaultConstructorGuard,
	)
	ErrYearRequiredWithMonth = errs.NewValueIsRequiredError("year (required when month is specified)")
)

// GetProfitByMonthQuery reports monthly profit over completed orders,
// optionally narrowed to one year or one month of a year.
//
// Example:
//
//	year, month := 2024, 5
//	query, err := NewGetProfitByMonthQuery(&year, &month, time.Now())
//	if err != nil {
//	    return err // out of range year or month, or month without year
//	}
//	rows, err := handler.Handle(ctx, query)
type GetProfitByMonthQuery struct {
	year  *int
	month *int

	guard guard.ConstructorGuard
}

// NewGetProfitByMonthQuery validates year against now: it must satisfy
// 1900 < year <= now.Year()+1. month must be 1..12 and needs a year.
func NewGetProfitByMonthQuery(year, month *int, now time.Time) (GetProfitByMonthQuery, error) {
	if year != nil && (*year <= minProfitYear || *year > now.Year()+1) {
		return GetProfitByMonthQuery{}, errs.NewValueIsOutOfRangeError("year", *year, minProfitYear+1, now.Year()+1)
	}
	if month != nil && (*month < int(time.January) || *month > int(time.December)) {
		return GetProfitByMonthQuery{}, errs.NewValueIsOutOfRangeError("month", *month, int(time.January), int(time.December))
	}
	if month != nil && year == nil {
		return GetProfitByMonthQuery{}, ErrYearRequiredWithMonth
	}

	q := GetProfitByMonthQuery{guard: guard.NewConstructorGuard()}
	if year != nil {
		y := *year
		q.year = &y
	}
	if month != nil {
		m := *month
		q.month = &m
	}
	return q, nil
}

// Validate reports whether the query was built with NewGetProfitByMonthQuery.
func (q GetProfitByMonthQuery) Validate() error {
	return q.guard.Validate(ErrGetProfitByMonthQueryIsNotConstructed)
}

// Year returns the requested year and whether one was given.
func (q GetProfitByMonthQuery) Year() (int, bool) {
	if q.year == nil {
		return 0, false
	}
	return *q.year, true
}

// Month returns the requested month and whether one was given.
func (q GetProfitByMonthQuery) Month() (int, bool) {
	if q.month == nil {
		return 0, false
	}
	return *q.month, true
}

// Window returns the half-open UTC creation-time range the query covers.
// Without a year the range is unbounded.
func (q GetProfitByMonthQuery) Window() ports.DateRange {
	year, ok := q.Year()
	if !ok {
		return ports.DateRange{}
	}

	if month, ok := q.Month(); ok {
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return ports.DateRange{From: from, To: from.AddDate(0, 1, 0)}
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return ports.DateRange{From: from, To: from.AddDate(1, 0, 0)}
}

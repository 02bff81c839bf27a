// Package types implements special types for the billing tracker.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMonthMalformed is returned when a billing month string cannot be
// split into a year and a month segment.
var ErrMonthMalformed = errors.New("the month must be in the format YYYY-MM")

// BillingMonth is the month identifier stored on billing entries,
// a string in the format "YYYY-MM". It is stored and compared verbatim,
// no normalization is performed.
type BillingMonth string

// NewBillingMonth returns the BillingMonth for a year and month.
func NewBillingMonth(year int, month time.Month) BillingMonth {
	return BillingMonth(fmt.Sprintf("%04d-%02d", year, month))
}

// String returns the raw YYYY-MM string.
func (m BillingMonth) String() string {
	return string(m)
}

// Index returns the calendar month index (1-12 for well-formed input).
//
// The string is split on '-' and the second segment is parsed as an
// integer. Values outside 1-12 are not rejected here, matching the
// stored format contract: month strings are written verbatim and only
// interpreted at calculation time.
func (m BillingMonth) Index() (int, error) {
	parts := strings.Split(string(m), "-")
	if len(parts) < 2 {
		return 0, ErrMonthMalformed
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrMonthMalformed
	}

	return index, nil
}

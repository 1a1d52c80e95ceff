package reshape

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	errEmptyPhone   = errors.New("empty value")
	errNotNumeric   = errors.New("not a number")
	errOutOfRange   = errors.New("out of integer range")
	decimalNotation = regexp.MustCompile(`^([+-]?\d+)(?:\.\d*)?$`)
	floatNotation   = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
)

// NormalizePhone renders a phone cell as a plain base-10 integer. A fractional part
// is truncated ("5559990000.0" becomes "5559990000"), exponent notation is accepted,
// and surrounding spaces are ignored.
func NormalizePhone(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errEmptyPhone
	}

	// Decimal text is handled without a float round trip so long numbers keep every digit
	if m := decimalNotation.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return "", errOutOfRange
		}
		return strconv.FormatInt(n, 10), nil
	}

	// ParseFloat on its own also accepts hex floats and digit underscores
	if !floatNotation.MatchString(s) {
		return "", errNotNumeric
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return "", errOutOfRange
		}
		return "", errNotNumeric
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errNotNumeric
	}

	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return "", errOutOfRange
	}
	return strconv.FormatInt(int64(f), 10), nil
}

// CoercePhones normalizes every record's phone value in place. It stops at the first
// value that is not a whole number and returns a ConversionError for it.
func CoercePhones(records []Record) error {
	for i := range records {
		phone, err := NormalizePhone(records[i].Phone)
		if err != nil {
			return &ConversionError{
				Line:   records[i].Line,
				Column: records[i].Column,
				Value:  records[i].Phone,
				Err:    err,
			}
		}
		records[i].Phone = phone
	}
	return nil
}

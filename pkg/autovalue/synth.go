package autovalue

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

const (
	// dateWindow is the number of days after the epoch before dates wrap
	// around. It covers 1900-01-01 through 2099-11-12.
	dateWindow = 73_000

	secondsPerDay = 86_400

	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05.000"
)

var epoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Synthesize returns the value of a column of the given type for an auto
// number. It is a pure function of its arguments.
func Synthesize(dt DataType, column string, autoNumber int) (string, error) {
	n := autoNumber
	switch dt {
	case SmallInt, Integer, BigInt:
		return strconv.Itoa(n), nil
	case Decimal, Numeric, Real, Double:
		return fmt.Sprintf("%d.%02d", n/100, n%100), nil
	case Boolean:
		return strconv.FormatBool(n%2 != 0), nil
	case Char, Varchar, LongVarchar, NChar, NVarchar, Clob, NClob:
		return textValue(column, n), nil
	case Binary, Varbinary, LongVarbinary, Blob:
		return base64.StdEncoding.EncodeToString([]byte(textValue(column, n))), nil
	case Date:
		return epoch.AddDate(0, 0, n%dateWindow).Format(dateLayout), nil
	case Time:
		// Wall clock of a UTC midnight, so the result does not depend on
		// the local zone or its daylight saving rules.
		t := epoch.Add(time.Duration(n) * time.Second)
		return t.Format(timeLayout), nil
	case Timestamp:
		t := epoch.AddDate(0, 0, n%dateWindow).
			Add(time.Duration(n%secondsPerDay) * time.Second).
			Add(time.Duration(n%1000) * time.Millisecond)
		return t.Format(timestampLayout), nil
	default:
		return "", UnsupportedDataTypeError(dt.String())
	}
}

func textValue(column string, n int) string {
	return fmt.Sprintf("%s %07d", column, n)
}

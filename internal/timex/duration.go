// Package timex holds time helpers shared by the configuration loaders.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Duration wraps time.Duration so JSON config files can use either Go
// duration strings ("30m", "1m30s") or integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// MaxMinutes is the largest whole number of minutes a time.Duration holds.
const MaxMinutes = int64(math.MaxInt64 / int64(time.Minute))

var ErrMinutesOutOfRange = errors.New("minutes out of range")

// Minutes converts n minutes to a time.Duration, failing instead of wrapping
// around when n does not fit.
func Minutes(n int64) (time.Duration, error) {
	if n > MaxMinutes || n < -MaxMinutes {
		return 0, fmt.Errorf("%w: %d", ErrMinutesOutOfRange, n)
	}
	return time.Duration(n) * time.Minute, nil
}

package node

import (
	"fmt"
	"time"

	"github.com/oarkflow/date"
)

// AsTime interprets a String node as a date in any format understood by
// oarkflow/date, and an Integer node as Unix seconds.
func AsTime(v Value) (time.Time, error) {
	switch t := v.(type) {
	case String:
		parsed, err := date.Parse(string(t))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", string(t), err)
		}
		return parsed, nil
	case Integer:
		return time.Unix(int64(t), 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("cannot read %s as time", KindOf(v))
	}
}

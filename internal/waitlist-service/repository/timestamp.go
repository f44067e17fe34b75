package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamps are persisted as RFC 3339 strings. Documents written by older
// tooling may carry a native BSON datetime instead, so reads accept both.
func encodeTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTimestamp(v interface{}) (time.Time, error) {
	switch ts := v.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", ts, err)
		}
		return parsed, nil
	case primitive.DateTime:
		return ts.Time().UTC(), nil
	case time.Time:
		return ts.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}

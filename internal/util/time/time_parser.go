package time_parser

import "time"

// ParseTimestamp converts the loosely-typed date values mobile clients send
// into UTC time.Time. Accepted inputs:
//   - nil or empty string: current time
//   - ISO strings: RFC3339, RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"
//   - date-only strings: "2006-01-02" (common for gig dates)
//   - Unix timestamps: seconds (< 1e12) or milliseconds (>= 1e12)
//
// Anything unparsable falls back to the current time.
func ParseTimestamp(timestamp any) time.Time {
	if timestamp == nil {
		return time.Now().UTC()
	}

	switch v := timestamp.(type) {
	case string:
		if v == "" {
			return time.Now().UTC()
		}

		formats := []string{
			time.RFC3339,
			time.RFC3339Nano,
			"2006-01-02T15:04:05Z",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		}

		for _, format := range formats {
			if t, err := time.Parse(format, v); err == nil {
				return t.UTC()
			}
		}

		return time.Now().UTC()

	case float64:
		// JSON numbers arrive as float64
		if v > 1e12 { // milliseconds
			return time.Unix(0, int64(v)*int64(time.Millisecond)).UTC()
		}
		return time.Unix(int64(v), 0).UTC()

	case int64:
		if v > 1e12 { // milliseconds
			return time.Unix(0, v*int64(time.Millisecond)).UTC()
		}
		return time.Unix(v, 0).UTC()

	case int:
		return ParseTimestamp(int64(v))

	default:
		return time.Now().UTC()
	}
}

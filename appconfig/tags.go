package appconfig

import "fmt"

// LogTag names a piece of request metadata prefixed to every log line.
type LogTag string

const (
	// LogTagSubdomain is the first label of the request host.
	LogTagSubdomain LogTag = "subdomain"
	// LogTagRequestID is the request correlation id.
	LogTagRequestID LogTag = "request_id"
)

// Valid reports whether t is a tag the logging layer knows how to derive.
func (t LogTag) Valid() bool {
	switch t {
	case LogTagSubdomain, LogTagRequestID:
		return true
	default:
		return false
	}
}

func validateLogTags(tags []LogTag) error {
	if len(tags) == 0 {
		return fmt.Errorf("at least one log tag is required")
	}
	seen := make(map[LogTag]struct{}, len(tags))
	for _, tag := range tags {
		if !tag.Valid() {
			return fmt.Errorf("unknown log tag %q", tag)
		}
		if _, dup := seen[tag]; dup {
			return fmt.Errorf("log tag %q is listed twice", tag)
		}
		seen[tag] = struct{}{}
	}
	return nil
}

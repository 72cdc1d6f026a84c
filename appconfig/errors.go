package appconfig

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or malformed setting. It is always
// fatal: the process must not start with partial configuration.
type ConfigurationError struct {
	// Setting names what is wrong, an environment variable when the value
	// comes from the environment.
	Setting string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s %s: %v", e.Setting, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s %s", e.Setting, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err carries a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

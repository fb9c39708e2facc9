package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tracker.Token) == "" {
		return fmt.Errorf("tracker.token must not be empty")
	}

	u, err := url.Parse(c.Tracker.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("tracker.api_base_url %q is not a valid absolute URL", c.Tracker.APIBaseURL)
	}

	if c.Tracker.Owner == "" || c.Tracker.Repo == "" {
		return fmt.Errorf("tracker.owner and tracker.repo must not be empty")
	}

	if c.Run.Timeout <= 0 {
		return fmt.Errorf("run.timeout must be > 0 (got %v)", c.Run.Timeout)
	}

	return nil
}

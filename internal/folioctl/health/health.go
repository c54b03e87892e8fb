package health

import (
	"fmt"
	"time"

	"folio/internal/folioctl/api"
)

// CheckOnce pings the server a single time.
func CheckOnce(host string) error {
	body, err := api.NewClient(host, "").Ping()
	if err != nil {
		return err
	}
	if body != "PONG" {
		return fmt.Errorf("unexpected ping response %q", body)
	}
	return nil
}

// WaitFor retries CheckOnce until it succeeds or attempts run out.
func WaitFor(host string, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = CheckOnce(host); err == nil {
			return nil
		}
		time.Sleep(delay)
	}
	return fmt.Errorf("server at %s is not healthy after %d attempts: %w", host, attempts, err)
}

package commands

import (
	"flag"
	"fmt"
	"io"
	"time"

	"folio/internal/folioctl/api"
	"folio/internal/folioctl/health"
)

// RunPing handles the `folioctl ping` subcommand.
func RunPing(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "", "folio host:port to query")
	retries := fs.Int("retries", 1, "attempts before giving up")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("ping: unexpected arguments")
	}

	target := api.ResolveHost(*host)

	var err error
	if *retries > 1 {
		err = health.WaitFor(target, *retries, time.Second)
	} else {
		err = health.CheckOnce(target)
	}
	if err != nil {
		return fmt.Errorf("folio is not responding: %w", err)
	}

	fmt.Fprintln(out, "PONG")
	return nil
}

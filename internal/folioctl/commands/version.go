package commands

import (
	"flag"
	"fmt"
	"io"

	"folio/internal/folioctl/api"
)

// RunVersion handles the `folioctl version` subcommand.
func RunVersion(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "", "folio host:port to query")

	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := api.NewClient(api.ResolveHost(*host), "").Version()
	if err != nil || version == "" {
		fmt.Fprintln(out, "No version detected")
		return nil
	}

	fmt.Fprintln(out, version)
	return nil
}

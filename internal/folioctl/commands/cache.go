package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"folio/internal/folioctl/api"
)

// RunClearCache handles `folioctl clear-cache`: it wipes the webhook history.
func RunClearCache(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("clear-cache", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "", "folio host:port to query")
	token := fs.String("token", os.Getenv("FOLIO_TOKEN"), "operator bearer token")

	if err := fs.Parse(args); err != nil {
		return err
	}

	bearer, err := resolveToken(*token)
	if err != nil {
		return err
	}

	msg, err := api.NewClient(api.ResolveHost(*host), bearer).ClearHistory()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, msg)
	return nil
}

// RunRevalidate handles `folioctl revalidate --tag <tag>`.
func RunRevalidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("revalidate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "", "folio host:port to query")
	token := fs.String("token", os.Getenv("FOLIO_TOKEN"), "operator bearer token")
	tag := fs.String("tag", "", "cache tag to revalidate (default: the blog listing)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	bearer, err := resolveToken(*token)
	if err != nil {
		return err
	}

	msg, err := api.NewClient(api.ResolveHost(*host), bearer).Revalidate(*tag)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, msg)
	return nil
}

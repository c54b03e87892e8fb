package commands

import (
	"fmt"
	"io"
)

// PrintUsage writes basic command help.
func PrintUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: folioctl <command> [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available commands:")
	fmt.Fprintln(out, "  ping         Check that the server answers /api/meta/ping")
	fmt.Fprintln(out, "  version      Show the running server version")
	fmt.Fprintln(out, "  token        Print a signed operator token (--name, --ttl)")
	fmt.Fprintln(out, "  clear-cache  Delete the stored webhook history")
	fmt.Fprintln(out, "  revalidate   Drop a cached render (--tag)")
	fmt.Fprintln(out, "  help         Show this help text")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "The server is reached at --host, $FOLIO_HOST or localhost:8080.")
}

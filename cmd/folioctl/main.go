package main

import (
	"fmt"
	"os"

	"folio/internal/env"
	"folio/internal/folioctl/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	env.Init(os.Getenv("FOLIO_ENV_ROOT"), "")

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error

	switch cmd {
	case "help", "--help", "-h":
		commands.PrintUsage(os.Stdout)
		return
	case "ping":
		err = commands.RunPing(args, os.Stdout)
	case "version":
		err = commands.RunVersion(args, os.Stdout)
	case "token":
		err = commands.RunToken(args, os.Stdout)
	case "clear-cache":
		err = commands.RunClearCache(args, os.Stdout)
	case "revalidate":
		err = commands.RunRevalidate(args, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "folioctl: unknown command %q\n", cmd)
		commands.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "folioctl %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

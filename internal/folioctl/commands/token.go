package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"folio/internal/env"
	"folio/internal/models"
	"folio/internal/operators"
)

// RunToken handles the `folioctl token` subcommand.
func RunToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "owner", "operator name embedded in the token")
	ttl := fs.Duration("ttl", operators.DefaultTokenTTL, "token lifetime")

	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := operators.GenToken(env.OPERATOR_JWT_SECRET, models.Operator{Name: strings.TrimSpace(*name)}, *ttl)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}

	fmt.Fprintln(out, token)
	return nil
}

// resolveToken returns the explicit token, or mints a short-lived one when
// the operator secret is available locally.
func resolveToken(explicit string) (string, error) {
	if token := strings.TrimSpace(explicit); token != "" {
		return token, nil
	}

	if len(env.OPERATOR_JWT_SECRET) == 0 {
		return "", fmt.Errorf("no operator token: pass --token, set FOLIO_TOKEN or OPERATOR_JWT_SECRET")
	}

	return operators.GenToken(env.OPERATOR_JWT_SECRET, models.Operator{Name: "folioctl"}, 5*time.Minute)
}

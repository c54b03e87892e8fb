// Package operators authenticates the site owner on the admin routes.
package operators

import (
	"errors"
	"strings"
	"time"

	"folio/internal/errmsg"
	"folio/internal/models"
	"folio/internal/utils"

	sj "github.com/brianvoe/sjwt"
	"github.com/gofiber/fiber/v3"
)

// LocalsKey is where Middleware stores the authenticated models.Operator.
const LocalsKey = "operator"

// DefaultTokenTTL is used when GenToken gets a non-positive ttl.
const DefaultTokenTTL = time.Hour

var (
	ErrNoSecret     = errors.New("operator secret not configured")
	ErrInvalidToken = errors.New("invalid operator token")
)

// GenToken signs a token for op that expires after ttl.
func GenToken(secret []byte, op models.Operator, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrNoSecret
	}

	if strings.TrimSpace(op.Name) == "" {
		return "", errors.New("operator name is required")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims, err := sj.ToClaims(op)
	if err != nil {
		return "", err
	}
	claims.SetIssuedAt(time.Now())
	claims.SetExpiresAt(time.Now().Add(ttl))

	return claims.Generate(secret), nil
}

// ParseToken verifies the signature and expiry of token and returns its operator.
func ParseToken(secret []byte, token string) (models.Operator, error) {
	if len(secret) == 0 {
		return models.Operator{}, ErrNoSecret
	}

	if !sj.Verify(token, secret) {
		return models.Operator{}, ErrInvalidToken
	}

	claims, err := sj.Parse(token)
	if err != nil {
		return models.Operator{}, ErrInvalidToken
	}

	if err := claims.Validate(); err != nil {
		return models.Operator{}, ErrInvalidToken
	}

	var op models.Operator
	if err := claims.ToStruct(&op); err != nil {
		return models.Operator{}, ErrInvalidToken
	}

	if strings.TrimSpace(op.Name) == "" {
		return models.Operator{}, ErrInvalidToken
	}

	return op, nil
}

// Middleware rejects requests without a valid `Bearer <token>` header.
func Middleware(secret []byte) fiber.Handler {
	return func(c fiber.Ctx) error {
		tokens := strings.Fields(c.Get("Authorization"))
		if len(tokens) != 2 || tokens[0] != "Bearer" {
			return utils.StatusError(c, errmsg.OperatorNoToken)
		}

		op, err := ParseToken(secret, tokens[1])
		if err != nil {
			return utils.StatusError(c, errmsg.OperatorInvalidToken)
		}

		utils.SetLocals(c, LocalsKey, op)

		return c.Next()
	}
}

// FromContext returns the operator stored by Middleware.
func FromContext(c fiber.Ctx) (models.Operator, bool) {
	var op models.Operator
	ok := utils.GetLocals(c, LocalsKey, &op)
	return op, ok
}

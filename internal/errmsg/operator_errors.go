package errmsg

import "net/http"

var (
	OperatorNoToken = NewStatusError(
		http.StatusUnauthorized,
		"no token has been provided",
	)
	OperatorInvalidToken = NewStatusError(
		http.StatusUnauthorized,
		"invalid or expired token",
	)
)

type _OperatorNoToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"no token has been provided"`
}

type _OperatorInvalidToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"invalid or expired token"`
}

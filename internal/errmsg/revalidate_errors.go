package errmsg

import "net/http"

var (
	RevalidateInvalidRequest = NewStatusError(
		http.StatusBadRequest,
		"invalid revalidation payload",
	)
	RevalidateFailed = NewStatusError(
		http.StatusInternalServerError,
		"Error in revalidation API",
	)
)

type _RevalidateInvalidRequest struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid revalidation payload"`
}

type _RevalidateFailed struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Error in revalidation API"`
}

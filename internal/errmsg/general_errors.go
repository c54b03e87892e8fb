package errmsg

import "net/http"

var SwaggerDocUnavailable = NewStatusError(
	http.StatusInternalServerError,
	"internal server error",
)

type _SwaggerDocUnavailable struct {
	StatusCode int    `json:"statusCode" example:"500"`
	Message    string `json:"message" example:"internal server error"`
}

// Package httperror defines the error response body.
package httperror

type Error struct {
	Message string `json:"error" example:"amount is not a valid number"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Package httputil provides request binding and OPTIONS helpers for the
// API handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRequestBodyEmpty is returned when the request body was empty but
	// a body is required.
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")

	// ErrInvalidBody is returned when the request body cannot be parsed.
	ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data")
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

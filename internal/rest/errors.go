package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

// clientMessages maps the validation errors a caller can trigger to the
// message they are shown. Validation errors missing here come from bad
// stored data and are reported as server errors.
var clientMessages = map[*domain.Error]string{
	domain.ErrNewThreadMissingProperty:  "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	domain.ErrNewThreadInvalidType:      "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	domain.ErrNewCommentMissingProperty: "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	domain.ErrNewCommentInvalidType:     "komentar harus berupa string",
	domain.ErrNewReplyMissingProperty:   "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	domain.ErrNewReplyInvalidType:       "balasan harus berupa string",
}

// getStatusCode will get the status code and the public message of err
func getStatusCode(err error) (int, string) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return http.StatusInternalServerError, internalErrorMessage
	}

	switch derr.Kind() {
	case domain.ErrNotFound:
		return http.StatusNotFound, derr.Error()
	case domain.ErrForbidden:
		return http.StatusForbidden, derr.Error()
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized, derr.Error()
	case domain.ErrConflict:
		return http.StatusConflict, derr.Error()
	case domain.ErrBadParamInput:
		if msg, ok := clientMessages[derr]; ok {
			return http.StatusBadRequest, msg
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func writeError(c *gin.Context, err error) {
	status, msg := getStatusCode(err)
	if status >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error(err)
		c.JSON(status, response.Error(msg))
		return
	}
	c.JSON(status, response.Fail(msg))
}

// bindError turns a JSON binding failure into the entity's validation error.
// A value of the wrong JSON type is a type error, anything else unreadable
// counts as a missing property.
func bindError(err error, missing, invalid error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return invalid
	}
	return missing
}

// userID returns the authenticated caller set by middleware.AuthMiddleware.
func userID(c *gin.Context) (string, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
}

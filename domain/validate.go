package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs the struct tags of v and reports any violation as missing.
func check(v any, missing *Error) error {
	return checkTyped(v, missing, missing)
}

// checkTyped is check, except that rules other than "required" are
// reported as invalid.
func checkTyped(v any, missing, invalid *Error) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return missing
			}
		}
	}
	return invalid
}

const (
	CommentDeletedMask = "**komentar telah dihapus**"
	ReplyDeletedMask   = "**balasan telah dihapus**"
)

// maskDeleted hides the content of a soft-deleted record.
func maskDeleted(content string, deleted bool, mask string) string {
	if deleted {
		return mask
	}
	return content
}

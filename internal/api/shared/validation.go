package shared

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskpost-api/internal/domain"
)

// fieldErrorMessage maps a validator tag onto the client-facing message.
func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "filled":
		return domain.MsgRequired(field)
	case "max":
		return domain.MsgMaxLength(field, fe.Param())
	case "min":
		return domain.MsgMinLength(field, fe.Param())
	case "email":
		return domain.MsgInvalidEmail(field)
	case "oneof", "task_status", "post_status":
		return domain.MsgInvalidChoice(field)
	default:
		return domain.MsgInvalid(field)
	}
}

// ValidationSummary returns the top-level message of a 422 response: the
// first field message, followed by a count of the remaining ones.
func ValidationSummary(verr *domain.ValidationError) string {
	msgs := verr.Messages()
	switch len(msgs) {
	case 0:
		return "The given data was invalid."
	case 1:
		return msgs[0]
	case 2:
		return msgs[0] + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", msgs[0], len(msgs)-1)
	}
}

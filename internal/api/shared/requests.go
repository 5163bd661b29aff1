package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskpost-api/internal/domain"
)

// MaxRequestBodyBytes bounds the size of a decoded request body.
const MaxRequestBodyBytes = 1 << 20

// ErrInvalidBody is returned by DecodeJSON when the body is not a JSON
// object that can be decoded at all.
var ErrInvalidBody = errors.New("invalid request body")

// Global validator instance for reuse
var validate = newValidator()

// FieldValidator is implemented by requests that need checks struct tags
// cannot express. It runs after tag validation.
type FieldValidator interface {
	ValidateFields(v *domain.ValidationError)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so field errors match the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("filled", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// Postgres text columns cannot store NUL.
	_ = v.RegisterValidation("no_nul", func(fl validator.FieldLevel) bool {
		return !ContainsNUL(fl.Field().String())
	})
	// An explicit empty status is invalid; omitempty on the tag decides
	// whether a missing one falls back to the default.
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		_, err := domain.ParseTaskStatus(raw)
		return raw != "" && err == nil
	})
	_ = v.RegisterValidation("post_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePostStatus(fl.Field().String())
		return err == nil
	})

	return v
}

// ContainsNUL reports whether s holds a NUL character.
func ContainsNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// DecodeJSON decodes the request body into the given struct.
//
// An empty body decodes to the zero value so that required-field checks
// report missing fields. Values of the wrong JSON type are reported as a
// *domain.ValidationError keyed by field, and the remaining fields are
// still decoded. Anything else that cannot be decoded, including data after
// the first JSON value, wraps ErrInvalidBody.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes))

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidBody)
	}

	return unmarshalFields(raw, v)
}

// unmarshalFields decodes raw into v. A type error stops encoding/json at a
// custom unmarshaler, so each offending key is recorded, dropped, and the
// rest of the object decoded again.
func unmarshalFields(raw json.RawMessage, v interface{}) error {
	fields := domain.NewFieldErrors()
	var obj map[string]json.RawMessage

	for {
		err := json.Unmarshal(raw, v)
		if err == nil {
			return fields.OrNil()
		}

		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		field := strings.SplitN(typeErr.Field, ".", 2)[0]
		fields.Add(field, domain.MsgType(field, jsonTypeName(typeErr.Type)))

		if obj == nil {
			if err := json.Unmarshal(raw, &obj); err != nil {
				return fields
			}
		}
		// Keys match struct fields case-insensitively.
		dropped := false
		for key := range obj {
			if strings.EqualFold(key, field) {
				delete(obj, key)
				dropped = true
			}
		}
		if !dropped {
			return fields
		}
		if raw, err = json.Marshal(obj); err != nil {
			return fields
		}
	}
}

// DecodeAndValidate decodes the body into v and validates it. Type errors
// from decoding are reported together with the validation errors of the
// other fields.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	decodeErr := DecodeJSON(r, v)

	var fields *domain.ValidationError
	if decodeErr != nil && !errors.As(decodeErr, &fields) {
		return decodeErr
	}

	err := ValidateRequest(v)
	if fields == nil {
		return err
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields.Merge(verr)
	} else if err != nil {
		return err
	}
	return fields
}

// jsonTypeName describes the expected JSON type of a Go type.
func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "true or false"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	default:
		return "valid"
	}
}

// ValidateRequest validates the given struct using the validator package
// and returns a *domain.ValidationError keyed by JSON field name, or nil.
func ValidateRequest(v interface{}) error {
	fields := domain.NewFieldErrors()

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields.Add(fe.Field(), fieldErrorMessage(fe))
		}
	}

	if fv, ok := v.(FieldValidator); ok {
		fv.ValidateFields(fields)
	}

	return fields.OrNil()
}

package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskboard/pkg/apierrors"
)

const (
	MsgRequired       = "validationRequired"
	MsgBlank          = "validationBlank"
	MsgNull           = "validationNull"
	MsgType           = "validationType"
	MsgEmail          = "validationEmail"
	MsgMin            = "validationMin"
	MsgMax            = "validationMax"
	MsgGte            = "validationGte"
	MsgLte            = "validationLte"
	MsgOneOf          = "validationOneof"
	MsgInvalidJSON    = "validationInvalidJSON"
	MsgEmptyUpdate    = "validationEmptyUpdate"
	MsgUniqueEmail    = "validationUniqueEmail"
	MsgUniqueUsername = "validationUniqueUsername"
	MsgUnknownUsers   = "validationUnknownUsers"
	MsgInvalid        = "validationInvalid"
)

// Errors is a list of field violations; handlers render it as a 400 with per-field messages.
type Errors []apierrors.Violation

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Field+": "+v.MsgKey)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Errors) add(field, msgKey, param string) {
	*e = append(*e, apierrors.Violation{Field: field, MsgKey: msgKey, Param: param})
}

// merge appends the tag violations for fields that have not been flagged yet.
func (e Errors) merge(tagged Errors) Errors {
	flagged := make(map[string]struct{}, len(e))
	for _, v := range e {
		flagged[v.Field] = struct{}{}
	}
	for _, v := range tagged {
		if _, ok := flagged[v.Field]; ok {
			continue
		}
		e = append(e, v)
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates the `validate` tags of v and reports violations by JSON field name.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, fromFieldError(fe.Field(), fe))
	}
	return violations
}

// BindJSON decodes the request body into dst. The body is cached on the context, so the
// same request may be bound more than once. An empty body decodes as an empty object.
func BindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindBodyWith(dst, binding.JSON)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Errors{{Field: typeErr.Field, MsgKey: MsgType, Param: typeName(typeErr.Type)}}
	}
	return Errors{{Field: apierrors.NonFieldErrors, MsgKey: MsgInvalidJSON}}
}

func fromFieldError(field string, fe validator.FieldError) apierrors.Violation {
	v := apierrors.Violation{Field: field, Param: fe.Param()}
	switch fe.Tag() {
	case "required":
		v.MsgKey = MsgRequired
	case "email":
		v.MsgKey = MsgEmail
	case "min":
		v.MsgKey = MsgMin
	case "max":
		v.MsgKey = MsgMax
	case "gte", "gt":
		v.MsgKey = MsgGte
	case "lte", "lt":
		v.MsgKey = MsgLte
	case "oneof":
		v.MsgKey = MsgOneOf
		v.Param = strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		v.MsgKey = MsgInvalid
	}
	return v
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		return typeName(t.Elem())
	default:
		return t.Kind().String()
	}
}

package response

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/portfolio-backend/internal/pkg/validate"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName makes validator report fields by their JSON key.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// AsValidationError converts binding failures into the client-facing
// *validate.Error. It reports false for errors that are not about the shape of
// the decoded body, such as malformed JSON.
func AsValidationError(err error) (*validate.Error, bool) {
	var ve *validate.Error
	if errors.As(err, &ve) {
		return ve, true
	}

	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		out := &validate.Error{}
		for _, fe := range fields {
			out.Add(fieldPath(fe), ruleMessage(fe.Tag()))
		}
		return out, true
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return validate.Single(te.Field, typeMessage(te)), true
	}
	return nil, false
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func ruleMessage(tag string) string {
	if tag == "required" {
		return "Required"
	}
	return "Invalid value"
}

func typeMessage(te *json.UnmarshalTypeError) string {
	got, _, _ := strings.Cut(te.Value, " ")
	if got == "bool" {
		got = "boolean"
	}
	want := jsonKind(te.Type)
	if want == "integer" {
		if got == "number" {
			return validate.Expected("integer", "float")
		}
		want = "number"
	}
	return validate.Expected(want, got)
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

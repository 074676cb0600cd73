package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// DecodeJSON reads the request body into the struct pointed to by v. Each
// declared field is decoded on its own, so several wrongly typed fields all
// come back as field errors in one pass and the boundary can answer 422
// with complete per-field detail, the same way ValidateStruct aggregates.
func DecodeJSON(r *http.Request, v interface{}) FieldErrors {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		errs := FieldErrors{}
		errs.Add("body", "The request body is required.")
		return errs
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		errs := FieldErrors{}
		errs.Add("body", "The request body must be valid JSON.")
		return errs
	}

	errs := FieldErrors{}
	dst := reflect.ValueOf(v).Elem()
	for i := 0; i < dst.NumField(); i++ {
		field := dst.Type().Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		fragment, ok := raw[name]
		if !ok {
			continue
		}

		if err := json.Unmarshal(fragment, dst.Field(i).Addr().Interface()); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				errs.Add(name, fmt.Sprintf("The %s must be of type %s.", name, typeErr.Type.String()))
			} else {
				errs.Add(name, fmt.Sprintf("The %s is invalid.", name))
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bind decodes the request body into v and runs its validator tags,
// reporting decode and validation problems as a single error set. A field
// that failed to decode keeps its decode message; validation of the zero
// value left behind is not reported on top of it.
func Bind(r *http.Request, v interface{}) FieldErrors {
	decErrs := DecodeJSON(r, v)
	if _, ok := decErrs["body"]; ok {
		return decErrs
	}

	valErrs := ValidateStruct(v)
	if len(decErrs) == 0 {
		return valErrs
	}
	for field, messages := range valErrs {
		if _, ok := decErrs[field]; !ok {
			decErrs[field] = messages
		}
	}
	return decErrs
}

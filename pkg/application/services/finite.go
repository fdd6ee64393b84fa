package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
)

// maxReportedFields bounds how many overflowed fields one issue lists
const maxReportedFields = 5

var guardedType = reflect.TypeOf(entities.Guarded{})

// clearNonFinite replaces every NaN or infinite number in the result with 0
// (guarded metrics become undefined) and reports the affected fields as a
// single InvalidInput issue. Inputs large enough to overflow float64
// arithmetic end here instead of reaching the encoders.
func clearNonFinite(result *dto.EvaluationResult) {
	var fields []string
	walkFloats(reflect.ValueOf(result).Elem(), "", &fields)
	if len(fields) == 0 {
		return
	}

	listed := fields
	if len(listed) > maxReportedFields {
		listed = listed[:maxReportedFields]
	}
	msg := strings.Join(listed, ", ")
	if extra := len(fields) - len(listed); extra > 0 {
		msg += fmt.Sprintf(" and %d more", extra)
	}
	result.Issues = append(result.Issues, entities.NewIssue(entities.InvalidInput, "result",
		"values overflowed and were set to 0: %s", msg))
}

func walkFloats(v reflect.Value, path string, fields *[]string) {
	switch v.Kind() {
	case reflect.Float64, reflect.Float32:
		if !entities.Finite(v.Float()) {
			v.SetFloat(0)
			*fields = append(*fields, path)
		}
	case reflect.Struct:
		if v.Type() == guardedType {
			g := v.Addr().Interface().(*entities.Guarded)
			if !entities.Finite(g.Value) {
				*g = entities.Undefined("value is not a finite number")
				*fields = append(*fields, path)
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			walkFloats(v.Field(i), joinPath(path, jsonName(field)), fields)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkFloats(v.Index(i), fmt.Sprintf("%s[%d]", path, i), fields)
		}
	case reflect.Pointer:
		if !v.IsNil() {
			walkFloats(v.Elem(), path, fields)
		}
	}
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

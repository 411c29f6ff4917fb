package httpc

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Object2UrlValues encodes exported fields tagged with `form:"name"` into url.Values.
// Nil pointers and fields tagged with ",omitempty" holding a zero value are skipped.
func Object2UrlValues(obj any) url.Values {
	result := url.Values{}

	v := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string
	var fValue reflect.Value
	var fType reflect.Type

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("form")
		if fieldTag == "" || fieldTag == "-" {
			continue
		}

		tagParts := strings.Split(fieldTag, ",")
		tagName = tagParts[0]
		fValue = v.FieldByIndex(field.Index)
		fType = field.Type

		if fType.Kind() == reflect.Pointer {
			if fValue.IsNil() {
				continue
			}

			fValue = fValue.Elem()
			fType = fType.Elem()
		} else if hasTagOption(tagParts[1:], "omitempty") && fValue.IsZero() {
			continue
		}

		switch fType.Kind() {
		case reflect.Slice, reflect.Array:
			strSlice := make([]string, fValue.Len())
			for i := 0; i < len(strSlice); i++ {
				strSlice[i] = formatValue(fValue.Index(i))
			}
			result[tagName] = strSlice
		default:
			result.Set(tagName, formatValue(fValue))
		}
	}

	return result
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func hasTagOption(opts []string, name string) bool {
	for _, o := range opts {
		if o == name {
			return true
		}
	}
	return false
}

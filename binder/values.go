package binder

import (
	"fmt"
	"mime"
	"reflect"
	"strconv"
	"strings"
)

// ValuesUnmarshaler is implemented by types that decode themselves from all
// values submitted under one key.
type ValuesUnmarshaler interface {
	UnmarshalValues(values []string) error
}

var valuesUnmarshalerType = reflect.TypeFor[ValuesUnmarshaler]()

// structValue returns the settable struct behind v.
func structValue(v any, bindErr error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}
	return rv, nil
}

// tagName returns the key named by tag on field, or "" when the field is not bound.
func tagName(field reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}

// bindValues copies values into the fields carrying tag.
func bindValues(v any, tag string, values map[string][]string, bindErr error) error {
	rv, err := structValue(v, bindErr)
	if err != nil {
		return err
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name := tagName(sf, tag)
		if name == "" {
			continue
		}

		fieldValues, ok := values[name]
		if !ok {
			continue
		}

		if err := setFieldValue(field, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, name, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, values []string) error {
	if field.CanAddr() && field.Addr().Type().Implements(valuesUnmarshalerType) {
		return field.Addr().Interface().(ValuesUnmarshaler).UnmarshalValues(values)
	}

	ft := field.Type()
	switch ft.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(ft.Elem()))
		}
		return setFieldValue(field.Elem(), values)

	case reflect.Slice:
		slice := reflect.MakeSlice(ft, len(values), len(values))
		for i, value := range values {
			if err := setScalar(slice.Index(i), value); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	return setScalar(field, value)
}

func setScalar(field reflect.Value, value string) error {
	ft := field.Type()
	switch ft.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseInt(value, 10, ft.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseUint(value, 10, ft.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseFloat(value, ft.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "t", "true", "on", "yes":
			field.SetBool(true)
		case "", "0", "f", "false", "off", "no":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}

	default:
		return fmt.Errorf("unsupported type %s", ft)
	}

	return nil
}

// mediaType returns the lower-cased media type of the request's Content-Type.
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

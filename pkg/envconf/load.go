package envconf

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrMissingRequired = errors.New("missing required environment variable")
	ErrUnsupportedType = errors.New("unsupported field type")
)

// typeParsers handle types whose Kind alone would pick the wrong parser:
// a Duration is an int64 and a *time.Location is a pointer to an opaque struct.
var typeParsers = map[reflect.Type]func(raw string) (reflect.Value, error){
	reflect.TypeOf(time.Duration(0)):      parseDuration,
	reflect.TypeOf((*time.Location)(nil)): parseLocation,
}

func parseDuration(raw string) (reflect.Value, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("parse duration: %w", err)
	}

	return reflect.ValueOf(d), nil
}

// parseLocation resolves an IANA zone name ("UTC", "Asia/Shanghai"). The
// empty string is rejected rather than read as UTC, so an unset zone is never
// silently defaulted.
func parseLocation(raw string) (reflect.Value, error) {
	if raw == "" {
		return reflect.Value{}, errors.New("empty time zone")
	}

	loc, err := time.LoadLocation(raw)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("load location: %w", err)
	}

	return reflect.ValueOf(loc), nil
}

// Load fills the exported fields of the struct dst points to from the
// environment. A field tagged `env:"NAME"` is required unless it also carries
// `envDefault:"value"`. Untagged struct fields are loaded recursively.
//
// nolint:gocognit
func Load(dst any) error {
	if dst == nil {
		return errors.New("destination is nil")
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.New("destination must be a non-nil pointer to a struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return errors.New("destination must point to a struct")
	}

	t := v.Type()
	for i := range v.NumField() {
		sf := t.Field(i)
		fv := v.Field(i)

		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("env")

		if tag == "-" || tag == "" {
			err := loadNested(sf, fv)
			if err != nil {
				return err
			}

			continue
		}

		raw, ok := os.LookupEnv(tag)
		if !ok {
			def, hasDef := sf.Tag.Lookup("envDefault")
			if !hasDef {
				return fmt.Errorf("%w: %s (field %q)", ErrMissingRequired, tag, sf.Name)
			}

			raw = def
		}

		err := setValue(fv, raw)
		if err != nil {
			return fmt.Errorf("parse %q for field %q: %w", tag, sf.Name, err)
		}
	}

	return nil
}

// loadNested recurses into an untagged struct or pointer-to-struct field,
// allocating nil pointers. Types owned by typeParsers are leaves, not configs.
func loadNested(sf reflect.StructField, fv reflect.Value) error {
	if _, leaf := typeParsers[fv.Type()]; leaf {
		return nil
	}

	var target any

	switch {
	case fv.Kind() == reflect.Struct:
		target = fv.Addr().Interface()
	case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.Struct:
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}

		target = fv.Interface()
	default:
		return nil
	}

	err := Load(target)
	if err != nil {
		return fmt.Errorf("load recursively %q: %w", sf.Name, err)
	}

	return nil
}

//nolint:gocognit,cyclop
func setValue(fv reflect.Value, raw string) error {
	if !fv.CanSet() {
		return fmt.Errorf("field not settable: %w", ErrUnsupportedType)
	}

	// encoding.TextUnmarshaler support
	if fv.CanAddr() {
		u, ok := fv.Addr().Interface().(encoding.TextUnmarshaler)
		if ok {
			err := u.UnmarshalText([]byte(raw))
			if err != nil {
				return fmt.Errorf("unmarshal text: %w", err)
			}

			return nil
		}
	}

	parse, ok := typeParsers[fv.Type()]
	if ok {
		v, err := parse(raw)
		if err != nil {
			return err
		}

		fv.Set(v)

		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)

		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse bool: %w", err)
		}

		fv.SetBool(b)

		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}

		fv.SetInt(i)

		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse uint: %w", err)
		}

		fv.SetUint(u)

		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse float: %w", err)
		}

		fv.SetFloat(f)

		return nil
	case reflect.Pointer:
		if fv.IsNil() {
			elem := reflect.New(fv.Type().Elem())

			err := setValue(elem.Elem(), raw)
			if err != nil {
				return fmt.Errorf("parse pointer: %w", err)
			}

			fv.Set(elem)

			return nil
		}

		err := setValue(fv.Elem(), raw)
		if err != nil {
			return fmt.Errorf("parse pointer: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unsupported type: %w", ErrUnsupportedType)
	}
}

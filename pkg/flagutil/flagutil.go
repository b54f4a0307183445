// Package flagutil provides typed accessors over pflag flag sets.
//
// Command handlers frequently pull a handful of flags out of a cobra
// command and convert them; done by hand that is three lines of lookup,
// error check and conversion per flag. The helpers here collapse the
// pattern: MustString for flags the command cannot run without,
// ParseRequired and ParseOptional for flags that carry a typed value in
// string form, and GetTyped for values pflag has already parsed.
package flagutil

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/pflag"
)

// MustString returns the value of a string flag, panicking when the flag is
// absent or empty. Reserve it for flags that are marked required in the
// command definition, where a missing value is a programming error rather
// than user input.
func MustString(fs *pflag.FlagSet, name string) string {
	value, err := fs.GetString(name)
	if err != nil || value == "" {
		panic(fmt.Sprintf("Required flag '%s' not provided", name))
	}
	return value
}

// OptionalString returns the value of a string flag and whether it carries
// a non-empty value.
func OptionalString(fs *pflag.FlagSet, name string) (string, bool) {
	value, err := fs.GetString(name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// ParseError reports a flag whose value could not be parsed into the
// requested type.
type ParseError struct {
	// Name is the flag name, without dashes.
	Name string
	// Message describes why the value was rejected.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid value for '%s': %s", e.Name, e.Message)
}

// ParseRequired reads a string flag and converts it with parse. A missing
// flag or a failed conversion returns a *ParseError naming the flag, so the
// message can go straight to the user.
func ParseRequired[T any](fs *pflag.FlagSet, name string, parse func(string) (T, error)) (T, error) {
	var zero T

	raw, ok := OptionalString(fs, name)
	if !ok {
		return zero, &ParseError{Name: name, Message: "flag not provided"}
	}

	parsed, err := parse(raw)
	if err != nil {
		return zero, &ParseError{Name: name, Message: err.Error()}
	}
	return parsed, nil
}

// ParseOptional is ParseRequired for flags that may be absent: a missing
// flag returns (nil, nil), a present one parses or fails the same way.
func ParseOptional[T any](fs *pflag.FlagSet, name string, parse func(string) (T, error)) (*T, error) {
	raw, ok := OptionalString(fs, name)
	if !ok {
		return nil, nil
	}

	parsed, err := parse(raw)
	if err != nil {
		return nil, &ParseError{Name: name, Message: err.Error()}
	}
	return &parsed, nil
}

// GetTyped fetches a value pflag has already parsed. Built-in flag types
// are read through their typed getters; flags registered with Var are read
// by asserting the backing pflag.Value to *T. It reports false when the
// flag does not exist or is backed by a different type.
func GetTyped[T any](fs *pflag.FlagSet, name string) (T, bool) {
	var zero T

	flag := fs.Lookup(name)
	if flag == nil {
		return zero, false
	}

	var value any
	var err error
	switch any(zero).(type) {
	case string:
		value, err = fs.GetString(name)
	case bool:
		value, err = fs.GetBool(name)
	case int:
		value, err = fs.GetInt(name)
		if err != nil {
			value, err = fs.GetCount(name)
		}
	case int64:
		value, err = fs.GetInt64(name)
	case uint:
		value, err = fs.GetUint(name)
	case float64:
		value, err = fs.GetFloat64(name)
	case time.Duration:
		value, err = fs.GetDuration(name)
	case net.IP:
		value, err = fs.GetIP(name)
	case []string:
		value, err = fs.GetStringSlice(name)
	default:
		if v, ok := flag.Value.(*T); ok {
			return *v, true
		}
		return zero, false
	}

	if err != nil {
		return zero, false
	}
	return value.(T), true
}

// GetTypedOr is GetTyped with a fallback for missing or mismatched flags.
func GetTypedOr[T any](fs *pflag.FlagSet, name string, def T) T {
	if value, ok := GetTyped[T](fs, name); ok {
		return value
	}
	return def
}

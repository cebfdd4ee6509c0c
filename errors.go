package pathedit

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrPathNotFound matches every *PathNotFoundError via errors.Is.
	ErrPathNotFound = errors.New("pathedit: path not found")
	// ErrTypeCollision matches every *TypeCollisionError via errors.Is.
	ErrTypeCollision = errors.New("pathedit: type collision")
)

// PathNotFoundError reports the sub-path at which traversal hit nothing.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("pathedit: there's nothing on %q", e.Path)
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// TypeCollisionError reports a segment that holds a value which cannot be descended into.
type TypeCollisionError struct {
	Path string
	// Type is a JSON-flavoured type name: "array", "string", "number", "boolean", "null", "object".
	Type string
}

func (e *TypeCollisionError) Error() string {
	return fmt.Sprintf("pathedit: there's already an element of type %q on %q", e.Type, e.Path)
}

func (e *TypeCollisionError) Is(target error) bool {
	return target == ErrTypeCollision
}

// typeName names v the way the collision error reports it.
func typeName(v interface{}) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Package schema holds declarative shape definitions for every upstream
// resource kind and validates decoded payloads against them before they are
// allowed past the proxy boundary.
package schema

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	String Kind = iota
	Number
	Bool
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return "unknown"
}

// Field describes one expected member of an object. Fields of kind Object
// carry their own nested field list; fields of kind Array describe their
// element through Elem.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Fields   []Field
	Elem     *Field
}

// Shape is the declared form of one resource kind.
type Shape struct {
	Name   string
	Fields []Field
}

// Error reports the first violated field path together with the expected
// and actual types. Validation is fail-fast: one Error aborts the whole
// payload, partial records are never produced.
type Error struct {
	Shape    string
	Path     string
	Expected string
	Actual   string
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: expected %s, got %s", e.Shape, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: field %s: expected %s, got %s", e.Shape, e.Path, e.Expected, e.Actual)
}

// Validate checks a single decoded JSON value against the shape.
func (s Shape) Validate(raw interface{}) error {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return &Error{Shape: s.Name, Expected: "object", Actual: typeName(raw)}
	}
	return s.validateObject(s.Fields, obj, "")
}

// ValidateList checks a decoded JSON array whose every element must conform
// to the shape. Any failing element fails the whole list.
func (s Shape) ValidateList(raw interface{}) error {
	arr, ok := raw.([]interface{})
	if !ok {
		return &Error{Shape: s.Name, Expected: "array", Actual: typeName(raw)}
	}

	for i, el := range arr {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return &Error{Shape: s.Name, Path: index(i), Expected: "object", Actual: typeName(el)}
		}
		if err := s.validateObject(s.Fields, obj, index(i)); err != nil {
			return err
		}
	}

	return nil
}

func (s Shape) validateObject(fields []Field, obj map[string]interface{}, path string) error {
	for _, f := range fields {
		value, present := obj[f.Name]

		if !present || value == nil {
			if f.Required {
				actual := "absent"
				if present {
					actual = "null"
				}
				return &Error{Shape: s.Name, Path: join(path, f.Name), Expected: f.Kind.String(), Actual: actual}
			}
			continue
		}

		if err := s.validateValue(f, value, join(path, f.Name)); err != nil {
			return err
		}
	}

	return nil
}

func (s Shape) validateValue(f Field, value interface{}, path string) error {
	switch f.Kind {
	case String:
		if _, ok := value.(string); !ok {
			return &Error{Shape: s.Name, Path: path, Expected: "string", Actual: typeName(value)}
		}
	case Number:
		if _, ok := value.(float64); !ok {
			return &Error{Shape: s.Name, Path: path, Expected: "number", Actual: typeName(value)}
		}
	case Bool:
		if _, ok := value.(bool); !ok {
			return &Error{Shape: s.Name, Path: path, Expected: "boolean", Actual: typeName(value)}
		}
	case Object:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return &Error{Shape: s.Name, Path: path, Expected: "object", Actual: typeName(value)}
		}
		return s.validateObject(f.Fields, obj, path)
	case Array:
		arr, ok := value.([]interface{})
		if !ok {
			return &Error{Shape: s.Name, Path: path, Expected: "array", Actual: typeName(value)}
		}
		if f.Elem == nil {
			return nil
		}
		for i, el := range arr {
			if el == nil {
				continue
			}
			if err := s.validateValue(*f.Elem, el, path+index(i)); err != nil {
				return err
			}
		}
	}

	return nil
}

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func join(path, name string) string {
	if len(path) == 0 {
		return name
	}
	return path + "." + name
}

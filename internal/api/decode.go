package api

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeAs converts a loosely-typed parsed response (maps and slices from the
// JSON decoder) into a typed value. Field matching follows json tags, and
// weak typing absorbs the backend's habit of sending numbers where strings
// are expected and vice versa.
func DecodeAs[T any](raw any) (T, error) {
	var out T
	if raw == nil {
		return out, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           &out,
	})
	if err != nil {
		return out, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// DecodeSlice converts a parsed response into a typed slice, tolerating a
// nil or missing body by returning an empty slice. Pages listing backend
// collections use this so a 204 renders as an empty table, not an error.
func DecodeSlice[T any](raw any) ([]T, error) {
	if raw == nil {
		return []T{}, nil
	}
	items, err := DecodeAs[[]T](raw)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

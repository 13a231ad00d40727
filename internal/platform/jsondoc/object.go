// Package jsondoc holds the structured JSON blobs stored in jsonb columns
// (notification preferences, layout config, bet details, player stats).
package jsondoc

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

var ErrNotObject = errors.New("json document must be an object")

// Object is a decoded JSON object. A nil Object encodes as "{}".
type Object map[string]any

// Parse decodes raw into an Object. Empty input yields an empty object.
func Parse(raw []byte) (Object, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Object{}, nil
	}
	if raw[0] != '{' {
		return nil, ErrNotObject
	}

	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	if out == nil {
		return nil, ErrNotObject
	}
	return Object(out), nil
}

func (o Object) Clone() Object {
	if o == nil {
		return Object{}
	}
	raw, err := sonic.Marshal(map[string]any(o))
	if err != nil {
		out := make(Object, len(o))
		for k, v := range o {
			out[k] = v
		}
		return out
	}
	cloned, err := Parse(raw)
	if err != nil {
		return Object{}
	}
	return cloned
}

func (o Object) Bytes() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	raw, err := sonic.Marshal(map[string]any(o))
	if err != nil {
		return nil, fmt.Errorf("encode json document: %w", err)
	}
	return raw, nil
}

func (o Object) Value() (driver.Value, error) {
	raw, err := o.Bytes()
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (o *Object) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*o = Object{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan json document: unsupported source type %T", src)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Object) MarshalJSON() ([]byte, error) {
	return o.Bytes()
}

func (o *Object) UnmarshalJSON(raw []byte) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		*o = nil
		return nil
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

package jsondoc

import (
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestParse(t *testing.T) {
	t.Run("empty input yields empty object", func(t *testing.T) {
		got, err := Parse(nil)
		if err != nil {
			t.Fatalf("parse empty: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty object, got %#v", got)
		}
	})

	t.Run("object input", func(t *testing.T) {
		got, err := Parse([]byte(`{"email":true,"push":{"bets":false}}`))
		if err != nil {
			t.Fatalf("parse object: %v", err)
		}
		if got["email"] != true {
			t.Fatalf("unexpected email flag: %#v", got["email"])
		}
		if _, ok := got["push"].(map[string]any); !ok {
			t.Fatalf("expected nested object, got %#v", got["push"])
		}
	})

	t.Run("non object input", func(t *testing.T) {
		for _, raw := range []string{`[1,2]`, `"text"`, `42`, `null`} {
			if _, err := Parse([]byte(raw)); !errors.Is(err, ErrNotObject) {
				t.Fatalf("expected ErrNotObject for %s, got %v", raw, err)
			}
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		if _, err := Parse([]byte(`{"a":`)); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestObject_ScanAndValue(t *testing.T) {
	var doc Object
	if err := doc.Scan([]byte(`{"theme":"dark"}`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if doc["theme"] != "dark" {
		t.Fatalf("unexpected theme: %#v", doc["theme"])
	}

	if err := doc.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if doc == nil || len(doc) != 0 {
		t.Fatalf("expected empty object after nil scan, got %#v", doc)
	}

	if err := doc.Scan(`[]`); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject from scan, got %v", err)
	}
	if err := doc.Scan(7); err == nil {
		t.Fatalf("expected error for unsupported scan source")
	}

	var empty Object
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("value of nil object: %v", err)
	}
	if v != "{}" {
		t.Fatalf("expected {} for nil object, got %v", v)
	}
}

func TestObject_JSONRoundTripThroughStruct(t *testing.T) {
	type payload struct {
		Layout Object `json:"layout"`
	}

	var in payload
	if err := jsoniter.Unmarshal([]byte(`{"layout":{"widgets":["odds","chat"]}}`), &in); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if _, ok := in.Layout["widgets"].([]any); !ok {
		t.Fatalf("unexpected widgets: %#v", in.Layout["widgets"])
	}

	if err := jsoniter.Unmarshal([]byte(`{"layout":[1]}`), &in); err == nil {
		t.Fatalf("expected error for non-object layout")
	}

	out, err := jsoniter.Marshal(payload{Layout: Object{"columns": 2.0}})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if string(out) != `{"layout":{"columns":2}}` {
		t.Fatalf("unexpected encoding: %s", out)
	}
}

func TestObject_CloneIsIndependent(t *testing.T) {
	orig := Object{"nested": map[string]any{"a": 1.0}}
	cloned := orig.Clone()
	cloned["nested"].(map[string]any)["a"] = 2.0

	if orig["nested"].(map[string]any)["a"] != 1.0 {
		t.Fatalf("expected original to stay unchanged, got %#v", orig)
	}
}

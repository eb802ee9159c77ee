package events

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Content is implemented by every content payload. The method is called on
// the zero value, so it must not depend on the receiver's fields.
type Content interface {
	EventType() EventType
}

// UnmarshalContent decodes a content object into v after checking that every
// required key is present and not null. v is usually a pointer to a plain
// alias of the content type so that its own UnmarshalJSON is not re-entered.
func UnmarshalContent(data []byte, v any, required ...string) error {
	fields, err := parseObject(data)
	if err != nil {
		return err
	}
	if err := requireFields(fields, required); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return locateField(fields, v, classify(err))
	}
	return nil
}

// RequireFields checks that data is a JSON object holding every named key
// with a non-null value.
func RequireFields(data []byte, required ...string) error {
	fields, err := parseObject(data)
	if err != nil {
		return err
	}
	return requireFields(fields, required)
}

func requireFields(fields map[string]gjson.Result, required []string) error {
	for _, name := range required {
		if v, ok := fields[name]; !ok || v.Type == gjson.Null {
			return missingField(name)
		}
	}
	return nil
}

// locateField names the wire key behind a decode failure. Each key is decoded
// on its own into a fresh value of v's type. A field path the decoder already
// reported is kept when its key fails; otherwise the first failing key wins.
func locateField(fields map[string]gjson.Result, v any, err error) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer {
		return err
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var failing []string
	for _, key := range keys {
		single, merr := json.Marshal(map[string]json.RawMessage{key: json.RawMessage(fields[key].Raw)})
		if merr != nil {
			continue
		}
		if json.Unmarshal(single, reflect.New(t.Elem()).Interface()) == nil {
			continue
		}
		if fe.Field == key || strings.HasPrefix(fe.Field, key+".") {
			return err
		}
		failing = append(failing, key)
	}
	if len(failing) == 0 {
		return err
	}

	cp := *fe
	cp.Field = failing[0]
	return &cp
}

// parseObject validates data and indexes the keys of its top-level object.
func parseObject(data []byte) (map[string]gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, typeMismatch("", errors.New("invalid json"))
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, typeMismatch("", fmt.Errorf("expected a JSON object, got %s", root.Type))
	}
	return root.Map(), nil
}

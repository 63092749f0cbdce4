package responses

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"attnview/internal/respid"
)

// Filename is the response file expected at each task directory root.
const Filename = "responses.json"

// Placeholder is displayed in place of an empty response.
const Placeholder = "(No response text)"

// ErrNotObject reports a responses file whose top-level value is not a JSON object.
var ErrNotObject = errors.New("responses file is not a JSON object")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Map associates response ids with their recorded text.
type Map map[string]string

// Load reads taskDir/responses.json, returning an empty Map on any failure.
func Load(taskDir string) Map {
	m, err := LoadFile(filepath.Join(taskDir, Filename))
	if err != nil {
		return Map{}
	}
	return m
}

// LoadFile parses a responses file and reports why it could not be used.
// Missing files surface as an error satisfying errors.Is(err, fs.ErrNotExist).
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, err
	}
	return Parse(data)
}

// Parse decodes response data. Non-string values are kept as text.
func Parse(data []byte) (Map, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return Map{}, fmt.Errorf("parse responses: %w", err)
	}
	if decoder.More() {
		return Map{}, errors.New("parse responses: trailing data after JSON value")
	}
	object, ok := raw.(map[string]any)
	if !ok {
		return Map{}, ErrNotObject
	}

	out := make(Map, len(object))
	for id, value := range object {
		out[id] = stringify(value)
	}
	return out, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}

// Order returns the ids of m numeric-first. An empty map yields the
// sentinel id.
func Order(m Map) []string {
	if len(m) == 0 {
		return []string{respid.Sentinel}
	}
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return respid.Less(ids[i], ids[j]) })
	return ids
}

// Text returns the response recorded for id, or an empty string.
func (m Map) Text(id string) string {
	return m[id]
}

// DisplayText substitutes the placeholder for blank text.
func DisplayText(text string) string {
	if strings.TrimSpace(text) == "" {
		return Placeholder
	}
	return text
}

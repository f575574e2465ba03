// Package json wraps a pre-configured jsoniter instance for json processing.
package json

import (
	"io"

	"github.com/curtisnewbie/tai/errs"
	jsoniter "github.com/json-iterator/go"
)

var (
	config = jsoniter.Config{EscapeHTML: true}.Froze()
)

// Parse json bytes.
func ParseJson(body []byte, ptr any) error {
	return config.Unmarshal(body, ptr)
}

// Parse json bytes.
func ParseJsonAs[T any](body []byte) (T, error) {
	var t T
	return t, ParseJson(body, &t)
}

// Parse json string.
func SParseJson(body string, ptr any) error {
	err := ParseJson([]byte(body), ptr)
	if err != nil {
		return errs.Wrapf(err, "body '%v'", body)
	}
	return nil
}

// Write json as bytes.
func WriteJson(body any) ([]byte, error) {
	return config.Marshal(body)
}

// Write json as string.
func SWriteJson(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := WriteJson(body)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Write json as string, ignoring error.
func TrySWriteJson(body any) string {
	if v, ok := body.(string); ok {
		return v
	}
	buf, err := WriteJson(body)
	if err != nil {
		return ""
	}
	return string(buf)
}

// Write json as indented string.
func SWriteIndent(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := config.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Decode json.
func DecodeJson(reader io.Reader, ptr any) error {
	return config.NewDecoder(reader).Decode(ptr)
}

// Encode json.
func EncodeJson(writer io.Writer, body any) error {
	return config.NewEncoder(writer).Encode(body)
}

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// RawDirectoryResponse is the decoded directory lookup payload. No schema is
// assumed: Body is whatever the JSON decoder produced (numbers as json.Number).
type RawDirectoryResponse struct {
	Body interface{}
}

// DecodeRaw parses a lookup response body. Only malformed JSON is an error;
// the shape of the document is left to the normalizer.
func DecodeRaw(b []byte) (RawDirectoryResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var body interface{}
	if err := dec.Decode(&body); err != nil {
		return RawDirectoryResponse{}, fmt.Errorf("decode directory response: %w", err)
	}
	if err := dec.Decode(new(interface{})); !errors.Is(err, io.EOF) {
		return RawDirectoryResponse{}, errors.New("decode directory response: trailing data after JSON value")
	}
	return RawDirectoryResponse{Body: body}, nil
}

// Directory returns the userDirectory object when the payload carries one.
func (r RawDirectoryResponse) Directory() (map[string]interface{}, bool) {
	root, ok := r.Body.(map[string]interface{})
	if !ok {
		return nil, false
	}
	dir, ok := root["userDirectory"].(map[string]interface{})
	return dir, ok
}

// IsEmpty reports a successful lookup that yielded no usable record.
func (r RawDirectoryResponse) IsEmpty() bool {
	_, ok := r.Directory()
	return !ok
}

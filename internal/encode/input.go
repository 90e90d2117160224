// Package encode prepares prediction input payloads for transmission.
//
// The API accepts only JSON values. File-like inputs are replaced with
// base64 data URIs before the payload is marshaled, so callers can pass
// an open file or any io.Reader directly as an input value.
package encode

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

// Input returns a copy of in with every io.Reader value replaced by a
// data URI. All other values pass through untouched. A nil map yields
// a nil map.
func Input(in map[string]any) (map[string]any, error) {
	if in == nil {
		return nil, nil
	}

	out := make(map[string]any, len(in))
	for k, v := range in {
		r, ok := v.(io.Reader)
		if !ok {
			out[k] = v
			continue
		}
		uri, err := DataURI(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode input %q: %w", k, err)
		}
		out[k] = uri
	}

	return out, nil
}

// DataURI reads r to completion and returns its contents as a base64
// data URI with a sniffed media type.
func DataURI(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	mediaType := http.DetectContentType(data)
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

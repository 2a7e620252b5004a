package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/model"
)

// maxFormMemory bounds in-memory buffering of multipart bodies
const maxFormMemory = 10 << 20

// parseForm parses a multipart or urlencoded form body
func parseForm(r *http.Request) (url.Values, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		if err := r.ParseForm(); err != nil {
			return nil, goerr.Wrap(err, "failed to parse form body",
				goerr.T(model.ErrTagInvalid))
		}
	}
	return r.Form, nil
}

// decodeFormArray collects the form entries named key[0], key[1], ...
// in index order and unmarshals each JSON-stringified value. The form
// builder flattens arrays this way on the wire; indices stop at the
// first gap.
func decodeFormArray[T any](values url.Values, key string) ([]T, error) {
	var out []T
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s[%d]", key, i)
		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			break
		}

		var item T
		if err := json.Unmarshal([]byte(raw[0]), &item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode form array entry",
				goerr.V("key", name),
				goerr.T(model.ErrTagInvalid))
		}
		out = append(out, item)
	}
	return out, nil
}

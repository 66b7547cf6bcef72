package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNetwork wraps every failure where no HTTP response came back.
var ErrNetwork = errors.New("network error")

// APIError is a server-reported failure: a non-2xx status, or a 2xx body that
// carries an "error" key or "success": false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// messageKeys are tried in order when pulling a user-visible string out of an
// error body.
var messageKeys = []string{"detail", "message", "error"}

func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range messageKeys {
		if msg := stringify(payload[key]); msg != "" {
			return msg
		}
	}
	return ""
}

// embeddedError finds failures reported inside a 2xx body.
func embeddedError(body []byte) (string, bool) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}
	if msg := stringify(payload["error"]); msg != "" {
		return msg, true
	}
	if success, ok := payload["success"].(bool); ok && !success {
		msg := stringify(payload["message"])
		if msg == "" {
			msg = "request was not successful"
		}
		return msg, true
	}
	return "", false
}

// stringify renders field validation maps the way the storefront showed them.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

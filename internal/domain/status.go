package domain

import "time"

// Fixed fields of the status document.
const (
	StatusOK      = "OK"
	StatusMessage = "AIGEM2 Backend API is running"
)

// TimestampLayout renders UTC instants as ISO-8601 with millisecond precision,
// e.g. 2024-01-01T00:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var endpoints = [...]string{
	"POST /api/activation/request",
	"POST /api/activation/verify-email",
	"POST /api/license/activate",
	"POST /api/license/heartbeat",
}

// StatusResponse is the document returned by the status endpoint.
type StatusResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Endpoints []string `json:"endpoints"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Endpoints returns the activation backend routes advertised by the status
// document, in order. The slice is a fresh copy on every call.
func Endpoints() []string {
	out := make([]string, len(endpoints))
	copy(out, endpoints[:])
	return out
}

// NewStatusResponse builds the status document for the instant now.
func NewStatusResponse(now time.Time) StatusResponse {
	return StatusResponse{
		Status:    StatusOK,
		Message:   StatusMessage,
		Timestamp: FormatTimestamp(now),
		Endpoints: Endpoints(),
	}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID      = "x-request-id"
	headerIdempotencyKey = "idempotency-key"
	headerLogName        = "x-log-name"
	headerLogFormat      = "x-log-format"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func logName(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerLogName))
}

func logFormat(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerLogFormat))
}

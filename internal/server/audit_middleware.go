package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		entry := AuditLogEntry{
			Timestamp:  start.UTC(),
			Method:     r.Method,
			Path:       r.URL.Path,
			ResourceID: resourceIDFromPath(r.URL.Path),
		}

		if user, err := s.authenticate(r); err == nil {
			entry.UserID = user.ID
		}

		// Image uploads carry base64 payloads; keep those out of the
		// audit stream.
		skipRequestBody := strings.HasSuffix(r.URL.Path, "/upload-image")
		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())
		entry.DurationMs = time.Since(start).Milliseconds()

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// resourceIDFromPath pulls the record id out of paths like
// /nurseries/nursery:<uuid> or /children/child:<uuid>/status.
func resourceIDFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		switch part {
		case "nurseries", "nursery", "children":
			if i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return ""
}

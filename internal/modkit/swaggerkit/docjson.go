package swaggerkit

import "net/http"

// hand maintained spec; regenerate by hand when routes change
const docJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "arc API", "version": "1.0.0"},
  "servers": [{"url": "/api/v1"}],
  "components": {
    "schemas": {
      "ErrorResponse": {
        "type": "object",
        "description": "Standard error response",
        "properties": {
          "status_code": {"type": "integer", "format": "int32"},
          "status": {"type": "string"},
          "code": {"type": "integer", "format": "int32"},
          "error": {"type": "string"},
          "request_id": {"type": "string"}
        },
        "required": ["status_code", "status"]
      }
    }
  },
  "paths": {
    "/reviews/ingest": {
      "post": {"summary": "Ingest a batch of raw reviews", "responses": {"200": {"description": "OK"}}}
    },
    "/reviews/reset": {
      "post": {"summary": "Reset the buffer and journal", "responses": {"200": {"description": "OK"}}}
    },
    "/reviews/peek": {
      "get": {"summary": "List the most recent buffered reviews", "responses": {"200": {"description": "OK"}}}
    },
    "/reviews/count": {
      "get": {"summary": "Count buffered reviews", "responses": {"200": {"description": "OK"}}}
    },
    "/score": {
      "post": {"summary": "Score supplied raw reviews", "responses": {"200": {"description": "OK"}}}
    }
  }
}`

// serveDocJSON serves the hand maintained swagger JSON
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docJSON))
	}
}

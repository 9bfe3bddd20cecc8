package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"odooclient/internal/lib/api/response"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	Health(slog.New(slog.NewTextHandler(io.Discard, nil)))(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("health response should be successful")
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["status"] != "OK" {
		t.Errorf("data = %v, want status OK", resp.Data)
	}
}

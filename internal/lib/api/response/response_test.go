package response

import (
	"testing"

	apierrors "odooclient/internal/lib/errors"
)

func TestOk(t *testing.T) {
	resp := Ok(map[string]string{"status": "OK"})

	if !resp.Success {
		t.Error("Ok() should set Success")
	}
	if resp.StatusMessage != "Success" {
		t.Errorf("StatusMessage = %q, want Success", resp.StatusMessage)
	}
	if resp.Timestamp == "" {
		t.Error("Timestamp should be filled in")
	}
}

func TestError(t *testing.T) {
	resp := Error("Requested resource not found")

	if resp.Success {
		t.Error("Error() should not set Success")
	}
	if resp.StatusMessage != "Requested resource not found" {
		t.Errorf("StatusMessage = %q", resp.StatusMessage)
	}
}

func TestErrorFromAPIError(t *testing.T) {
	apiErr := apierrors.NewUpstreamError("SearchRead")
	resp := ErrorFromAPIError(apiErr)

	if resp.Success {
		t.Error("error response should not be successful")
	}
	if resp.Error == nil {
		t.Fatal("Error detail should be set")
	}
	if resp.Error.Code != string(apierrors.ErrCodeUpstreamError) {
		t.Errorf("Code = %q, want %q", resp.Error.Code, apierrors.ErrCodeUpstreamError)
	}
	if resp.Error.Details["operation"] != "SearchRead" {
		t.Errorf("Details = %v, want operation=SearchRead", resp.Error.Details)
	}
}

func TestWithRequestID(t *testing.T) {
	resp := Ok(nil).WithRequestID("req-123")
	if resp.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", resp.RequestID)
	}
}

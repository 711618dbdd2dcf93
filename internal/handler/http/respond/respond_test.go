package respond

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 200, map[string]string{"message": "ok"})

	if rec.Code != 200 {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("message = %q, want ok", body["message"])
	}
}

func TestJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 204, nil)

	if rec.Code != 204 {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 400, errors.New("no text provided"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "no text provided" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantBody string
	}{
		{
			name:     "validation error passes through",
			code:     400,
			err:      errors.New("text is required"),
			wantBody: "text is required",
		},
		{
			name:     "internal details masked",
			code:     400,
			err:      errors.New("dial tcp 10.0.0.5:5432: connect failed"),
			wantBody: "internal server error",
		},
		{
			name:     "5xx surfaces the message",
			code:     500,
			err:      errors.New("grammar check: connect failed"),
			wantBody: "grammar check: connect failed",
		},
		{
			name:     "5xx masks embedded API keys",
			code:     502,
			err:      errors.New("auth rejected for sk-ant-abc123def456"),
			wantBody: "auth rejected for sk-ant-****",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["error"] != tt.wantBody {
				t.Errorf("error = %q, want %q", body["error"], tt.wantBody)
			}
		})
	}
}

func TestSafeErrorNil(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, 500, nil)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

package responses

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return payload
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"status": "ok"})

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	payload := decodeBody(t, rec.Body.Bytes())
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %T", payload["data"])
	}
	if data["status"] != "ok" {
		t.Fatalf("data = %v", data)
	}
}

func TestWriteSuccessStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccessStatus(rec, 201, map[string]string{"outcome": "added"})
	if rec.Code != 201 {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestWriteErrorValidationExposesMessageAndDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "selection is incomplete").
		WithDetails(map[string]string{"size": "is required for this product"})

	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	payload := decodeBody(t, rec.Body.Bytes())
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Fatalf("code = %v", errObj["code"])
	}
	if errObj["message"] != "selection is incomplete" {
		t.Fatalf("message = %v", errObj["message"])
	}
	details := errObj["details"].(map[string]any)
	if details["size"] != "is required for this product" {
		t.Fatalf("details = %v", details)
	}
}

func TestWriteErrorInternalHidesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeInternal, "the kv dsn was invalid")

	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	payload := decodeBody(t, rec.Body.Bytes())
	errObj := payload["error"].(map[string]any)
	if errObj["message"] != "internal server error" {
		t.Fatalf("message = %v, internal details must not leak", errObj["message"])
	}
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), rec, io.ErrUnexpectedEOF)

	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	payload := decodeBody(t, rec.Body.Bytes())
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != "INTERNAL_ERROR" {
		t.Fatalf("code = %v", errObj["code"])
	}
}

func TestWriteErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeNotFound, `product "p-404" not found`)

	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	payload := decodeBody(t, rec.Body.Bytes())
	errObj := payload["error"].(map[string]any)
	if errObj["message"] != `product "p-404" not found` {
		t.Fatalf("message = %v", errObj["message"])
	}
}

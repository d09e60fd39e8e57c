package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/splitledger/internal/adapter/http/dto"
)

func TestSelectionHandler_Select(t *testing.T) {
	uc := newLedger(t)
	handler := NewSelectionHandler(uc)

	req := httptest.NewRequest(http.MethodPut, "/selection", bytes.NewBufferString(`{"friend_id":"118836"}`))
	rec := httptest.NewRecorder()
	handler.Select(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SelectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SelectedID != "118836" {
		t.Fatalf("expected selection 118836, got %q", resp.SelectedID)
	}
}

func TestSelectionHandler_SelectUnknown(t *testing.T) {
	handler := NewSelectionHandler(newLedger(t))

	req := httptest.NewRequest(http.MethodPut, "/selection", bytes.NewBufferString(`{"friend_id":"missing"}`))
	rec := httptest.NewRecorder()
	handler.Select(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSelectionHandler_SelectMissingID(t *testing.T) {
	handler := NewSelectionHandler(newLedger(t))

	req := httptest.NewRequest(http.MethodPut, "/selection", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.Select(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSelectionHandler_Clear(t *testing.T) {
	uc := newLedger(t)
	if _, err := uc.SelectFriend(context.Background(), "118836"); err != nil {
		t.Fatalf("select: %v", err)
	}
	handler := NewSelectionHandler(uc)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.Clear(rec, httptest.NewRequest(http.MethodDelete, "/selection", nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	}

	if uc.Snapshot(context.Background()).Selection.IsSet() {
		t.Fatalf("expected selection to be cleared")
	}
}

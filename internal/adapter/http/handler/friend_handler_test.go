package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

const testAvatar = "https://i.pravatar.cc/48"

type friendServiceStub struct {
	snapshotFn func(ctx context.Context) usecase.State
	getFn      func(ctx context.Context, id string) (*domain.Friend, error)
	addFn      func(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error)
	removeFn   func(ctx context.Context, id string) error
}

func (s *friendServiceStub) Snapshot(ctx context.Context) usecase.State {
	return s.snapshotFn(ctx)
}

func (s *friendServiceStub) GetFriend(ctx context.Context, id string) (*domain.Friend, error) {
	return s.getFn(ctx, id)
}

func (s *friendServiceStub) AddFriend(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error) {
	return s.addFn(ctx, input)
}

func (s *friendServiceStub) RemoveFriend(ctx context.Context, id string) error {
	return s.removeFn(ctx, id)
}

func TestFriendHandler_List(t *testing.T) {
	handler := NewFriendHandler(&friendServiceStub{
		snapshotFn: func(ctx context.Context) usecase.State {
			return usecase.State{
				Friends:   domain.DefaultFriends(),
				Selection: domain.SelectionOf("499476"),
			}
		},
	}, testAvatar, "")

	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.LedgerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Friends) != 3 {
		t.Fatalf("expected 3 friends, got %d", len(resp.Friends))
	}
	if resp.Friends[0].Message != "You owe 7 to Clark" {
		t.Fatalf("unexpected message %q", resp.Friends[0].Message)
	}
	if resp.SelectedID != "499476" {
		t.Fatalf("expected selection 499476, got %q", resp.SelectedID)
	}
}

func TestFriendHandler_Create_Success(t *testing.T) {
	var captured usecase.AddFriendInput
	handler := NewFriendHandler(&friendServiceStub{
		addFn: func(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error) {
			captured = input
			return &domain.Friend{ID: "f-1", Name: input.Name, Image: input.Image + "?u=f-1", Balance: decimal.Zero}, nil
		},
	}, testAvatar, "")

	body, _ := json.Marshal(map[string]string{"name": "Dana"})
	req := httptest.NewRequest(http.MethodPost, "/friends", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Dana" || captured.Image != testAvatar {
		t.Fatalf("expected default avatar to be applied, got %+v", captured)
	}

	var resp dto.FriendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "f-1" || resp.Message != "You and Dana are even" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestFriendHandler_Create_Incomplete(t *testing.T) {
	handler := NewFriendHandler(&friendServiceStub{
		addFn: func(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error) {
			return nil, domain.ErrIncompleteFriend
		},
	}, testAvatar, "")

	req := httptest.NewRequest(http.MethodPost, "/friends", bytes.NewBufferString(`{"name":"","image":""}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFriendHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewFriendHandler(&friendServiceStub{
		addFn: func(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error) {
			t.Fatal("AddFriend should not be called for invalid payload")
			return nil, nil
		},
	}, testAvatar, "")

	req := httptest.NewRequest(http.MethodPost, "/friends", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFriendHandler_Get(t *testing.T) {
	handler := NewFriendHandler(&friendServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Friend, error) {
			if id != "933372" {
				return nil, domain.ErrFriendNotFound
			}
			return &domain.Friend{ID: id, Name: "Sarah", Image: "img", Balance: decimal.NewFromInt(20)}, nil
		},
	}, testAvatar, "₹")

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/friends/933372", nil), "id", "933372")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dto.FriendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Sarah owes you 20₹" || resp.Standing != "owed" {
		t.Fatalf("unexpected response %+v", resp)
	}

	req = setChiURLParam(httptest.NewRequest(http.MethodGet, "/friends/nope", nil), "id", "nope")
	rec = httptest.NewRecorder()
	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestFriendHandler_Delete(t *testing.T) {
	var removed string
	handler := NewFriendHandler(&friendServiceStub{
		removeFn: func(ctx context.Context, id string) error {
			removed = id
			return nil
		},
	}, testAvatar, "")

	req := setChiURLParam(httptest.NewRequest(http.MethodDelete, "/friends/118836", nil), "id", "118836")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if removed != "118836" {
		t.Fatalf("expected friend 118836 to be removed, got %q", removed)
	}
}

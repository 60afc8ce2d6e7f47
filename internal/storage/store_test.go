package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func disconnectedStore(t *testing.T) *Store {
	t.Helper()
	return Open(context.Background(), "", "", log.New(io.Discard))
}

func TestOpenWithoutConfig(t *testing.T) {
	s := disconnectedStore(t)
	if s.Connected() {
		t.Error("store with no configuration should be disconnected")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Errorf("Close on disconnected store: %v", err)
	}
}

func TestDisconnectedOperationsFail(t *testing.T) {
	s := disconnectedStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "client", map[string]any{"name": "Acme"})
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Create error type = %T, want *StoreError", err)
	}
	if storeErr.Op != "create" {
		t.Errorf("Op = %q, want %q", storeErr.Op, "create")
	}

	_, err = s.List(ctx, "client", 10)
	if !errors.As(err, &storeErr) {
		t.Fatalf("List error type = %T, want *StoreError", err)
	}
	if storeErr.Op != "list" {
		t.Errorf("Op = %q, want %q", storeErr.Op, "list")
	}
}

func TestDisconnectedStatus(t *testing.T) {
	s := disconnectedStore(t)

	st := s.Status(context.Background())
	if st.Connected {
		t.Error("Status.Connected should be false")
	}
	if st.Detail != "Not Available" {
		t.Errorf("Detail = %q, want %q", st.Detail, "Not Available")
	}
	if len(st.Collections) != 0 {
		t.Errorf("Collections = %v, want empty", st.Collections)
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("write rejected")
	err := &StoreError{Op: "create", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "create") || !strings.Contains(err.Error(), "write rejected") {
		t.Errorf("Error() = %q, should mention op and cause", err.Error())
	}
}

func TestRenderID(t *testing.T) {
	oid := bson.NewObjectID()
	if got := renderID(oid); got != oid.Hex() {
		t.Errorf("renderID(ObjectID) = %q, want %q", got, oid.Hex())
	}
	if got := renderID("already-a-string"); got != "already-a-string" {
		t.Errorf("renderID(string) = %q", got)
	}
	if got := renderID(42); got != "42" {
		t.Errorf("renderID(int) = %q, want %q", got, "42")
	}
	if renderID(oid) == "" {
		t.Error("rendered id should never be empty")
	}
}

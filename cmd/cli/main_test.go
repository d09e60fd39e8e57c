package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/iho/splitledger/internal/adapter/http"
	"github.com/iho/splitledger/internal/adapter/http/handler"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

type fixedIDs struct{}

func (fixedIDs) Generate() string { return "new-friend" }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ledger, err := domain.NewLedger(domain.DefaultFriends())
	require.NoError(t, err)
	uc := usecase.NewLedgerUseCase(ledger, fixedIDs{}, nil, zerolog.Nop())

	srv := httptest.NewServer(httpAdapter.NewRouter(httpAdapter.RouterConfig{
		FriendHandler:    handler.NewFriendHandler(uc, "https://i.pravatar.cc/48", ""),
		SelectionHandler: handler.NewSelectionHandler(uc),
		SplitHandler:     handler.NewSplitHandler(uc, ""),
		HealthHandler:    handler.NewHealthHandler(nil),
		Logger:           zerolog.Nop(),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--url", srv.URL}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lon...", truncate("longerstring", 6))
	assert.Equal(t, "lo", truncate("longerstring", 2))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}))

	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestFriendsList(t *testing.T) {
	srv := newTestServer(t)

	out, err := runCLI(t, srv, "friends", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "You owe 7 to Clark")
	assert.Contains(t, out, "Sarah owes you 20")
	assert.Contains(t, out, "You and Anthony are even")
	assert.Contains(t, out, "net: 13")
}

func TestSplitFlow(t *testing.T) {
	srv := newTestServer(t)

	_, err := runCLI(t, srv, "split", "--bill", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")

	out, err := runCLI(t, srv, "select", "933372")
	require.NoError(t, err)
	assert.Equal(t, "selected 933372\n", out)

	_, err = runCLI(t, srv, "split", "--bill", "100", "--your-expense", "120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expense cannot be greater than bill")

	out, err = runCLI(t, srv, "split", "--bill", "100", "--your-expense", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah owes you 80")

	out, err = runCLI(t, srv, "friends", "list")
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "* "), "selection should be cleared after a split")
}

func TestFriendsAddAndRemove(t *testing.T) {
	srv := newTestServer(t)

	out, err := runCLI(t, srv, "friends", "add", "Dana")
	require.NoError(t, err)
	assert.Contains(t, out, "You and Dana are even")

	out, err = runCLI(t, srv, "--json", "friends", "get", "new-friend")
	require.NoError(t, err)
	assert.Contains(t, out, `"image": "https://i.pravatar.cc/48?u=new-friend"`)

	_, err = runCLI(t, srv, "friends", "add", "Eve", "--image", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")

	out, err = runCLI(t, srv, "friends", "rm", "new-friend")
	require.NoError(t, err)
	assert.Equal(t, "removed new-friend\n", out)

	_, err = runCLI(t, srv, "friends", "get", "new-friend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestSplitRejectsBadAmounts(t *testing.T) {
	srv := newTestServer(t)

	_, err := runCLI(t, srv, "split", "--bill", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --bill")
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/reelmates/reelmates-BE/internal/notification"
	"github.com/reelmates/reelmates-BE/internal/util"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type noopSender struct{}

func (noopSender) Send(ctx context.Context, token string, n *db.Notification) error { return nil }

func newTestServer(store db.Store) *Server {
	dispatcher := notification.NewDispatcher(store,
		notification.NewHistoryStore(store),
		notification.NewGateway(store, noopSender{}),
	)

	return NewServer(store, dispatcher, &util.Config{
		AllowedOrigins: []string{"*"},
	})
}

func newSharedWatchlistStore() *db.MemoryStore {
	store := db.NewMemoryStore()
	store.PutUser(&db.User{ID: "owner", Username: "owen", Name: "Owen", ProfilePicture: "owen.png"})
	store.PutUser(&db.User{ID: "friend", Username: "fay", Name: "Fay"})
	store.PutWatchlist("owner", &db.Watchlist{
		ID:        "wl1",
		Name:      "Horror Nights",
		CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
	})
	store.PutWatchlist("owner", &db.Watchlist{ID: "wl2", Name: "Secret Stash", IsPrivate: true})
	return store
}

func TestGetSharedWatchlist(t *testing.T) {
	server := newTestServer(newSharedWatchlistStore())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/v1/watchlists/shared?watchlistId=wl1&userId=owner&invitedBy=friend", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response sharedWatchlistResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "Horror Nights", response.Watchlist.Name)
	require.Equal(t, "owen", response.User.Username)
	require.Equal(t, "fay", response.SharedBy.Username)
}

func TestGetSharedWatchlistMissingParams(t *testing.T) {
	server := newTestServer(newSharedWatchlistStore())

	for _, target := range []string{
		"/v1/watchlists/shared",
		"/v1/watchlists/shared?watchlistId=wl1",
		"/v1/watchlists/shared?watchlistId=wl1&userId=owner",
		"/v1/watchlists/shared?userId=owner&invitedBy=friend",
	} {
		recorder := httptest.NewRecorder()
		server.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusBadRequest, recorder.Code, "target %s", target)
	}
}

func TestGetSharedWatchlistNotFound(t *testing.T) {
	server := newTestServer(newSharedWatchlistStore())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/v1/watchlists/shared?watchlistId=ghost&userId=owner&invitedBy=friend", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetSharedWatchlistPrivate(t *testing.T) {
	server := newTestServer(newSharedWatchlistStore())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/v1/watchlists/shared?watchlistId=wl2&userId=owner&invitedBy=friend", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetSharedWatchlistUnknownInviter(t *testing.T) {
	server := newTestServer(newSharedWatchlistStore())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/v1/watchlists/shared?watchlistId=wl1&userId=owner&invitedBy=ghost", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSharedWatchlistPreflight(t *testing.T) {
	server := newTestServer(newSharedWatchlistStore())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodOptions, "/v1/watchlists/shared", nil)
	request.Header.Set("Origin", "http://app.example")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNoContent, recorder.Code)
}

package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, origins ...string) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	r := gin.New()
	NewHandler(hub, origins).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Count() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishReachesEveryClient(t *testing.T) {
	hub, srv := newTestServer(t)

	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		c, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
		require.NoError(t, err)
		defer c.Close()
		conns = append(conns, c)
	}
	waitForClients(t, hub, 2)

	hub.Publish("reservation.created", map[string]any{"id": 7})

	for _, c := range conns {
		require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev struct {
			Type string         `json:"type"`
			Data map[string]any `json:"data"`
		}
		require.NoError(t, c.ReadJSON(&ev))
		assert.Equal(t, "reservation.created", ev.Type)
		assert.Equal(t, float64(7), ev.Data["id"])
	}
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub, srv := newTestServer(t)

	c, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	waitForClients(t, hub, 1)

	require.NoError(t, c.Close())
	waitForClients(t, hub, 0)

	// no subscribers is fine
	hub.Publish("band.deleted", nil)
}

func TestHandler_RejectsUnknownOrigin(t *testing.T) {
	_, srv := newTestServer(t, "http://localhost:5173")

	h := http.Header{}
	h.Set("Origin", "http://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), h)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	h.Set("Origin", "http://localhost:5173")
	c, _, err := websocket.DefaultDialer.Dial(wsURL(srv), h)
	require.NoError(t, err)
	_ = c.Close()
}

package realtime

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

func newServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.URL.Query().Get("user"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn, uint(id))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, user int) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + strconv.Itoa(user)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestHub_NotifyMessageReachesBothParticipants(t *testing.T) {
	hub := NewHub()
	srv := newServer(t, hub)

	a := dial(t, srv, 1)
	b := dial(t, srv, 2)
	outsider := dial(t, srv, 3)

	for _, c := range []*websocket.Conn{a, b, outsider} {
		assert.Equal(t, "connected", readEvent(t, c).Type)
	}

	conv := &models.Conversation{ID: 9, ParticipantAID: 1, ParticipantBID: 2}
	msg := &models.Message{ID: 5, ConversationID: 9, SenderID: 1, Content: "hi", Sender: models.User{ID: 1, Username: "alice"}}
	hub.NotifyMessage(conv, msg)

	for _, c := range []*websocket.Conn{a, b} {
		ev := readEvent(t, c)
		assert.Equal(t, "message", ev.Type)
		assert.Equal(t, uint(9), ev.ConversationID)
		require.NotNil(t, ev.Message)
		assert.Equal(t, "hi", ev.Message.Content)
		assert.Equal(t, "alice", ev.Message.Sender.Username)
	}

	require.NoError(t, outsider.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := outsider.ReadMessage()
	assert.Error(t, err)
}

func TestHub_RemovesClosedConnections(t *testing.T) {
	hub := NewHub()
	srv := newServer(t, hub)

	conn := dial(t, srv, 4)
	readEvent(t, conn)
	assert.Equal(t, 1, hub.Connected(4))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Connected(4) == 0 }, 2*time.Second, 20*time.Millisecond)

	// Sending to a user with no connections is a no-op.
	hub.Send(4, Event{Type: "message"})
}

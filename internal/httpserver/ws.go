// internal/httpserver/ws.go
//
// WebSocket upgrade endpoints. Each game type has one lobby; a connection
// joins it and speaks the clientMsg/serverMsg envelope until it drops.

package httpserver

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Cross-origin policy is enforced by the HTTP CORS middleware; the upgrader
// accepts what reaches it.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleHeartsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("hearts ws upgrade")
		return
	}
	s.hearts.handleConnection(conn)
}

func (s *Server) handleSpitWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("spit ws upgrade")
		return
	}
	s.spit.handleConnection(conn)
}

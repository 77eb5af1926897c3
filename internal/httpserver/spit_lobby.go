// internal/httpserver/spit_lobby.go
//
// The Spit lobby. Exactly two seats; plays and spit requests arrive in any
// order (Spit has no turns) and are serialized under the lobby mutex. The
// lobby runs the round boundary itself: when the engine reports a round
// over it redistributes and redeals immediately.

package httpserver

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/spit"
)

type spitLobby struct {
	mu      sync.Mutex
	srv     *Server
	conns   map[*websocket.Conn]string
	roster  []string
	game    *spit.Game
	session string
}

func newSpitLobby(srv *Server) *spitLobby {
	return &spitLobby{srv: srv, conns: make(map[*websocket.Conn]string)}
}

func (l *spitLobby) handleConnection(conn *websocket.Conn) {
	defer l.drop(conn)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			l.send(conn, errorMsg("bad_request", "invalid json"))
			continue
		}
		l.handle(conn, msg)
	}
}

func (l *spitLobby) handle(conn *websocket.Conn, msg clientMsg) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch msg.Type {
	case "join":
		l.join(conn, msg.Name)
	case "start":
		l.start(conn)
	case "playCard":
		l.playCard(conn, msg)
	case "requestSpit":
		l.requestSpit(conn)
	case "validMoves":
		l.validMoves(conn)
	case "end":
		l.end(conn)
	default:
		l.send(conn, errorMsg("unknown_type", "unknown message type"))
	}
}

func (l *spitLobby) join(conn *websocket.Conn, name string) {
	if name == "" {
		l.send(conn, errorMsg("bad_request", "name required"))
		return
	}
	if l.game != nil {
		l.send(conn, errorMsg("in_progress", "game already in progress"))
		return
	}
	if len(l.roster) >= 2 {
		l.send(conn, errorMsg("table_full", "spit seats two players"))
		return
	}
	for _, n := range l.roster {
		if n == name {
			l.send(conn, errorMsg("name_taken", "that name is already at the table"))
			return
		}
	}
	l.conns[conn] = name
	l.roster = append(l.roster, name)
	if err := l.srv.ensurePlayer(name); err != nil {
		log.Warn().Err(err).Str("player", name).Msg("ensure player row")
	}
	l.broadcast(serverMsg{Type: "players", Players: append([]string(nil), l.roster...), Host: l.host()})
}

func (l *spitLobby) start(conn *websocket.Conn) {
	name := l.conns[conn]
	if name == "" || name != l.host() {
		l.send(conn, errorMsg("not_host", "only the host can start the game"))
		return
	}
	if l.game != nil {
		l.send(conn, errorMsg("in_progress", "game already in progress"))
		return
	}
	if len(l.roster) != 2 {
		l.send(conn, errorMsg("not_enough_players", "spit needs exactly 2 players"))
		return
	}

	g, err := spit.New(l.roster[0], l.roster[1], time.Now().UnixNano())
	if err != nil {
		l.send(conn, errorMsg("internal", err.Error()))
		return
	}
	g.Setup()
	l.game = g
	l.session = l.srv.registerSession("spit", l.roster)
	l.srv.recordGameStart(l.roster)
	l.broadcastState(nil)
}

func (l *spitLobby) playCard(conn *websocket.Conn, msg clientMsg) {
	name := l.conns[conn]
	if l.game == nil || name == "" {
		l.send(conn, errorMsg("no_game", "no game in progress"))
		return
	}
	if msg.SpitPile == nil || msg.CenterPile == nil {
		l.send(conn, errorMsg("bad_request", "spitPileIndex and centerPileIndex required"))
		return
	}
	res, err := l.game.PlayCard(name, *msg.SpitPile, *msg.CenterPile)
	if err != nil {
		l.send(conn, serverMsg{Type: "error", Error: toErrorView(err)})
		return
	}

	events := []event{{Type: "cardPlayed", Data: map[string]any{"player": name, "card": res.Card}}}
	switch {
	case res.GameOver:
		l.broadcastState(events)
		l.gameOver(res.Winner)
	case res.RoundOver:
		events = append(events, event{Type: "roundOver", Data: res.Eliminated})
		l.broadcastState(events)
		l.endRound()
	default:
		l.broadcastState(events)
	}
}

func (l *spitLobby) requestSpit(conn *websocket.Conn) {
	name := l.conns[conn]
	if l.game == nil || name == "" {
		l.send(conn, errorMsg("no_game", "no game in progress"))
		return
	}
	res, err := l.game.RequestSpit(name)
	if err != nil {
		l.send(conn, serverMsg{Type: "error", Error: toErrorView(err)})
		return
	}
	if res.Pending {
		l.broadcast(serverMsg{Type: "spitPending", Players: []string{name}})
		return
	}
	kind := "mutual"
	if res.Solo {
		kind = "solo"
	}
	l.broadcastState([]event{{Type: "spitExecuted", Data: kind}})
	if res.GameOver {
		l.gameOver(res.Winner)
	}
}

// validMoves answers the asking connection only.
func (l *spitLobby) validMoves(conn *websocket.Conn) {
	name := l.conns[conn]
	if l.game == nil || name == "" {
		l.send(conn, errorMsg("no_game", "no game in progress"))
		return
	}
	l.send(conn, serverMsg{Type: "validMoves", Moves: l.game.ValidMoves(name)})
}

// endRound runs the redistribution and redeal, or closes the game when a
// next deck came up empty.
func (l *spitLobby) endRound() {
	res, err := l.game.EndRound()
	if err != nil {
		log.Error().Err(err).Msg("end spit round")
		return
	}
	if res.GameOver {
		l.broadcastState([]event{{Type: "gameOver", Data: res.Winner}})
		l.gameOver(res.Winner)
		return
	}
	l.broadcastState([]event{{Type: "newRound", Data: res.Round}})
}

func (l *spitLobby) gameOver(winner string) {
	if winner != "" {
		l.srv.recordWin(winner)
	}
	l.broadcast(serverMsg{Type: "gameOver", Summary: winner})
	l.teardown()
}

func (l *spitLobby) end(conn *websocket.Conn) {
	name := l.conns[conn]
	if name == "" || name != l.host() {
		l.send(conn, errorMsg("not_host", "only the host can end the game"))
		return
	}
	l.broadcast(serverMsg{Type: "gameEnded"})
	l.teardown()
}

func (l *spitLobby) teardown() {
	l.game = nil
	if l.session != "" {
		l.srv.unregisterSession(l.session)
		l.session = ""
	}
}

func (l *spitLobby) drop(conn *websocket.Conn) {
	_ = conn.Close()
	l.mu.Lock()
	defer l.mu.Unlock()
	name, ok := l.conns[conn]
	if !ok {
		return
	}
	delete(l.conns, conn)
	for i, n := range l.roster {
		if n == name {
			l.roster = append(l.roster[:i], l.roster[i+1:]...)
			break
		}
	}
	if l.game != nil {
		l.broadcast(serverMsg{Type: "gameEnded", Events: []event{{Type: "playerLeft", Data: name}}})
		l.teardown()
	}
	l.broadcast(serverMsg{Type: "players", Players: append([]string(nil), l.roster...), Host: l.host()})
}

func (l *spitLobby) host() string {
	if len(l.roster) == 0 {
		return ""
	}
	return l.roster[0]
}

func (l *spitLobby) broadcastState(events []event) {
	l.broadcast(serverMsg{Type: "state", State: l.game.State(), Events: events})
}

func (l *spitLobby) broadcast(msg serverMsg) {
	for conn := range l.conns {
		l.send(conn, msg)
	}
}

func (l *spitLobby) send(conn *websocket.Conn, msg serverMsg) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Debug().Err(err).Msg("spit ws write")
	}
}

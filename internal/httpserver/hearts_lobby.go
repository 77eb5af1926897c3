// internal/httpserver/hearts_lobby.go
//
// The Hearts lobby. One lobby instance lives on the Server (no package
// singleton); players join over a websocket, the host starts the game, and
// the lobby serializes every action into the engine under one mutex.
// Rejections go back to the acting connection only; state goes to everyone.

package httpserver

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
	"github.com/MatthewRust/Hearts-Game-Christmas/internal/hearts"
)

const minHeartsPlayers = 2

type heartsLobby struct {
	mu      sync.Mutex
	srv     *Server
	conns   map[*websocket.Conn]string
	roster  []string // join order; the first joiner hosts
	game    *hearts.Game
	session string
}

func newHeartsLobby(srv *Server) *heartsLobby {
	return &heartsLobby{srv: srv, conns: make(map[*websocket.Conn]string)}
}

func (l *heartsLobby) handleConnection(conn *websocket.Conn) {
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

func (l *heartsLobby) handle(conn *websocket.Conn, msg clientMsg) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch msg.Type {
	case "join":
		l.join(conn, msg.Name)
	case "start":
		l.start(conn)
	case "playCard":
		l.playCard(conn, msg)
	case "passCards":
		l.passCards(conn, msg)
	case "end":
		l.end(conn)
	default:
		l.send(conn, errorMsg("unknown_type", "unknown message type"))
	}
}

func (l *heartsLobby) join(conn *websocket.Conn, name string) {
	if name == "" {
		l.send(conn, errorMsg("bad_request", "name required"))
		return
	}
	if l.game != nil {
		l.send(conn, errorMsg("in_progress", "game already in progress"))
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
	l.broadcastRoster()
}

func (l *heartsLobby) start(conn *websocket.Conn) {
	name := l.conns[conn]
	if name == "" || name != l.host() {
		l.send(conn, errorMsg("not_host", "only the host can start the game"))
		return
	}
	if l.game != nil {
		l.send(conn, errorMsg("in_progress", "game already in progress"))
		return
	}
	if len(l.roster) < minHeartsPlayers {
		l.send(conn, errorMsg("not_enough_players", "need at least 2 players"))
		return
	}

	g, err := hearts.New(l.roster, time.Now().UnixNano())
	if err != nil {
		l.send(conn, errorMsg("internal", err.Error()))
		return
	}
	g.SetupDeck()
	g.DealAll()
	g.SetInitialLeader()
	l.game = g
	l.session = l.srv.registerSession("hearts", l.roster)
	l.srv.recordGameStart(l.roster)

	l.sendHands()
	l.broadcastState(nil)
}

func (l *heartsLobby) playCard(conn *websocket.Conn, msg clientMsg) {
	name := l.conns[conn]
	if l.game == nil || name == "" {
		l.send(conn, errorMsg("no_game", "no game in progress"))
		return
	}
	if msg.Card == nil {
		l.send(conn, errorMsg("bad_request", "card required"))
		return
	}
	res, err := l.game.PlayCard(name, *msg.Card)
	if err != nil {
		l.send(conn, serverMsg{Type: "error", Error: toErrorView(err)})
		return
	}

	var events []event
	if res.TrickComplete {
		events = append(events, event{Type: "trickResolved", Data: map[string]any{
			"winner": res.TrickWinner,
			"points": res.TrickPoints,
		}})
	}
	l.broadcastState(events)

	if res.RoundOver {
		l.finishRound()
	}
}

func (l *heartsLobby) passCards(conn *websocket.Conn, msg clientMsg) {
	name := l.conns[conn]
	if l.game == nil || name == "" {
		l.send(conn, errorMsg("no_game", "no game in progress"))
		return
	}
	if len(msg.Cards) != 2 {
		l.send(conn, errorMsg(string(cards.ViolationSelection), "exactly two cards must be passed"))
		return
	}
	res, err := l.game.SelectPassCards(name, [2]cards.Card{msg.Cards[0], msg.Cards[1]})
	if err != nil {
		l.send(conn, serverMsg{Type: "error", Error: toErrorView(err)})
		return
	}
	if res.Exchanged {
		l.sendHands()
		l.broadcastState([]event{{Type: "passExchanged"}})
		return
	}
	l.broadcast(serverMsg{Type: "passUpdate", State: map[string]int{"submitted": res.Submitted}})
}

// finishRound scores the round and either deals the next one or closes the
// game, crediting the win.
func (l *heartsLobby) finishRound() {
	summary, err := l.game.FinishRound()
	if err != nil {
		log.Error().Err(err).Msg("finish hearts round")
		return
	}
	l.broadcast(serverMsg{Type: "roundSummary", Summary: summary})

	if summary.GameOver {
		for _, st := range summary.Standings {
			if st.Place == 1 {
				l.srv.recordWin(st.Player)
			}
		}
		l.broadcast(serverMsg{Type: "gameOver", Summary: summary.Standings})
		l.teardown()
		return
	}
	if err := l.game.StartNewRound(); err != nil {
		log.Error().Err(err).Msg("start hearts round")
		return
	}
	l.sendHands()
	l.broadcastState([]event{{Type: "newRound", Data: l.game.Round()}})
}

func (l *heartsLobby) end(conn *websocket.Conn) {
	name := l.conns[conn]
	if name == "" || name != l.host() {
		l.send(conn, errorMsg("not_host", "only the host can end the game"))
		return
	}
	l.broadcast(serverMsg{Type: "gameEnded"})
	l.teardown()
}

// teardown discards the engine and the session registration. The roster
// stays so the table can start again.
func (l *heartsLobby) teardown() {
	l.game = nil
	if l.session != "" {
		l.srv.unregisterSession(l.session)
		l.session = ""
	}
}

func (l *heartsLobby) drop(conn *websocket.Conn) {
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
	// A live game cannot continue without one of its players.
	if l.game != nil {
		l.broadcast(serverMsg{Type: "gameEnded", Events: []event{{Type: "playerLeft", Data: name}}})
		l.teardown()
	}
	l.broadcastRoster()
}

func (l *heartsLobby) host() string {
	if len(l.roster) == 0 {
		return ""
	}
	return l.roster[0]
}

func (l *heartsLobby) broadcastRoster() {
	l.broadcast(serverMsg{Type: "players", Players: append([]string(nil), l.roster...), Host: l.host()})
}

// sendHands delivers each player's hand privately.
func (l *heartsLobby) sendHands() {
	for conn, name := range l.conns {
		l.send(conn, serverMsg{Type: "hand", Hand: l.game.HandOf(name)})
	}
}

func (l *heartsLobby) broadcastState(events []event) {
	l.broadcast(serverMsg{Type: "state", State: l.game.State(), Events: events})
}

func (l *heartsLobby) broadcast(msg serverMsg) {
	for conn := range l.conns {
		l.send(conn, msg)
	}
}

func (l *heartsLobby) send(conn *websocket.Conn, msg serverMsg) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Debug().Err(err).Msg("hearts ws write")
	}
}

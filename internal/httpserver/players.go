// internal/httpserver/players.go
//
// Player stats and session bookkeeping shared by both lobbies: guest row
// creation, win counters, the public leaderboard, and the active-session
// registry behind /games/active. The SQL itself lives in internal/players.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/players"
	"github.com/MatthewRust/Hearts-Game-Christmas/internal/store"
)

// ensurePlayer inserts a guest row for a name the first time it sits down.
// Existing rows, guest or registered, are left alone.
func (s *Server) ensurePlayer(username string) error {
	return players.Ensure(context.Background(), s.db, username)
}

// recordGameStart bumps games_played for every participant.
func (s *Server) recordGameStart(names []string) {
	for _, name := range names {
		if err := players.BumpGamesPlayed(context.Background(), s.db, name); err != nil {
			log.Warn().Err(err).Str("player", name).Msg("bump games played")
		}
	}
}

// recordWin bumps the winner's counter.
func (s *Server) recordWin(username string) {
	if err := players.RecordWin(context.Background(), s.db, username); err != nil {
		log.Warn().Err(err).Str("player", username).Msg("record win")
	}
}

// handleLeaderboard returns the top win counts. ?limit= caps the rows,
// default 20.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	rows, err := players.Leaderboard(r.Context(), s.db, limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// handleActiveGames lists the sessions currently running.
func (s *Server) handleActiveGames(w http.ResponseWriter, r *http.Request) {
	list, err := s.sessions.List(r.Context())
	if err != nil {
		http.Error(w, `{"error":"registry_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// registerSession records a started game and returns its ID.
func (s *Server) registerSession(kind string, names []string) string {
	now := time.Now().UTC()
	sess := &store.Session{
		ID:        kind + "-" + now.Format("20060102150405"),
		Kind:      kind,
		Players:   append([]string(nil), names...),
		StartedAt: now,
	}
	if err := s.sessions.Save(context.Background(), sess); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("register session")
	}
	return sess.ID
}

// unregisterSession drops a finished game.
func (s *Server) unregisterSession(id string) {
	if err := s.sessions.Remove(context.Background(), id); err != nil {
		log.Warn().Err(err).Str("session", id).Msg("unregister session")
	}
}

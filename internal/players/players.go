// internal/players/players.go
//
// Player stat records in the players table: guest row creation, win and
// games-played counters, and the leaderboard query. The lobbies and the
// HTTP routes both go through this package so the SQL lives in one place.

package players

import (
	"context"
	"database/sql"
	"time"
)

// Stats is one player's lifetime record.
type Stats struct {
	Username    string `json:"username"`
	Wins        int    `json:"wins"`
	GamesPlayed int    `json:"gamesPlayed"`
}

// Ensure inserts a guest row for a username if none exists. Existing rows,
// guest or registered, are left alone.
func Ensure(ctx context.Context, db *sql.DB, username string) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO players (username, created_at) VALUES (?,?)`,
		username, time.Now().UTC().Format(time.RFC3339))
	return err
}

// RecordWin bumps a player's win counter.
func RecordWin(ctx context.Context, db *sql.DB, username string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE players SET wins = wins + 1 WHERE username=?`, username)
	return err
}

// BumpGamesPlayed bumps a player's games counter.
func BumpGamesPlayed(ctx context.Context, db *sql.DB, username string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE players SET games_played = games_played + 1 WHERE username=?`, username)
	return err
}

// Get loads one player's record, matching the username case-insensitively.
func Get(ctx context.Context, db *sql.DB, username string) (Stats, error) {
	var p Stats
	err := db.QueryRowContext(ctx,
		`SELECT username, wins, games_played FROM players WHERE lower(username)=lower(?)`,
		username,
	).Scan(&p.Username, &p.Wins, &p.GamesPlayed)
	return p, err
}

// Leaderboard fetches the top players by win count.
//
// - Ordered by wins DESC, then games played ASC, then username ASC.
// - Default limit is 20 if not specified.
func Leaderboard(ctx context.Context, db *sql.DB, limit int) ([]Stats, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
        SELECT username, wins, games_played
        FROM players
        ORDER BY wins DESC, games_played ASC, username ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Stats, 0, limit)
	for rows.Next() {
		var p Stats
		if err := rows.Scan(&p.Username, &p.Wins, &p.GamesPlayed); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

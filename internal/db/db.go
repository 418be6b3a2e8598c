package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/sukalov/lyricsync/internal/utils"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Song is one row of the lyrics table: the identifying metadata plus the four
// raw lyric tracks. Only the original track is required; the others are
// nullable and an absent track simply reads as empty text downstream.
type Song struct {
	ID         string
	Title      string
	Artist     sql.NullString
	Original   string
	Translated sql.NullString
	Romanized  sql.NullString
	Dynamic    sql.NullString
}

type Manager struct {
	database *sql.DB
}

func NewManager() (*Manager, error) {
	env, err := utils.LoadEnv([]string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN"})
	if err != nil {
		return nil, fmt.Errorf("failed to load db env: %w", err)
	}
	url := fmt.Sprintf("%s?authToken=%s", env["TURSO_DATABASE_URL"], env["TURSO_AUTH_TOKEN"])

	database, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(25)
	database.SetConnMaxLifetime(5 * time.Minute)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Manager{database: database}, nil
}

// AllSongs loads every row of the lyrics table. Rows that fail to scan are
// skipped, not fatal.
func (m *Manager) AllSongs(ctx context.Context) ([]Song, error) {
	rows, err := m.database.QueryContext(ctx,
		"SELECT id, title, artist, original, translated, romanized, dynamic FROM lyrics")
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Original, &song.Translated, &song.Romanized, &song.Dynamic); err != nil {
			log.Printf("error scanning row: %v", err)
			continue
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}

	return songs, nil
}

func (m *Manager) FindSong(ctx context.Context, id string) (Song, bool, error) {
	var song Song
	err := m.database.QueryRowContext(ctx,
		"SELECT id, title, artist, original, translated, romanized, dynamic FROM lyrics WHERE id = ?", id).
		Scan(&song.ID, &song.Title, &song.Artist, &song.Original, &song.Translated, &song.Romanized, &song.Dynamic)
	if err == sql.ErrNoRows {
		return Song{}, false, nil
	}
	if err != nil {
		return Song{}, false, fmt.Errorf("failed to load song %s: %w", id, err)
	}
	return song, true, nil
}

// Close closes the database connection safely
func (m *Manager) Close() {
	if m.database != nil {
		if err := m.database.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}
}

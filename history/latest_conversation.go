package history

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LatestConversationID returns the ID of the most recently created
// conversation, or ErrConversationNotFound when the database is empty.
func LatestConversationID(dbPath string) (string, error) {
	db, err := initDB(dbPath)
	if err != nil {
		return "", fmt.Errorf("history: opening database %s: %w", dbPath, err)
	}
	defer db.Close()

	var id string
	err = db.QueryRow(`SELECT id FROM conversations ORDER BY created_at DESC LIMIT 1`).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrConversationNotFound
		}
		return "", fmt.Errorf("history: querying latest conversation: %w", err)
	}
	return id, nil
}

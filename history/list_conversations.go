package history

import (
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// ListConversations returns metadata for every stored conversation, most
// recent first. A missing database file yields an empty list.
func ListConversations(dbPath string) ([]ConversationMetadata, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return []ConversationMetadata{}, nil
	}

	db, err := initDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: opening database %s: %w", dbPath, err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT c.id, c.created_at, COUNT(m.id)
		FROM conversations c
		LEFT JOIN messages m ON c.id = m.conversation_id
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("history: querying conversations: %w", err)
	}
	defer rows.Close()

	var list []ConversationMetadata
	for rows.Next() {
		var meta ConversationMetadata
		if err := rows.Scan(&meta.ID, &meta.CreatedAt, &meta.MessageCount); err != nil {
			return nil, fmt.Errorf("history: scanning conversation metadata: %w", err)
		}
		list = append(list, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterating conversations: %w", err)
	}

	return list, nil
}

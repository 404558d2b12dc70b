package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadFrom retrieves a conversation and its messages from the database at
// dbPath. It returns ErrConversationNotFound when the ID is unknown.
func LoadFrom(conversationID string, dbPath string) (*Conversation, error) {
	db, err := initDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: opening database %s: %w", dbPath, err)
	}
	defer db.Close()

	conv := &Conversation{ID: conversationID, Messages: make([]*Message, 0)}

	err = db.QueryRow(
		`SELECT created_at FROM conversations WHERE id = ?`, conversationID,
	).Scan(&conv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
		}
		return nil, fmt.Errorf("history: querying conversation %s: %w", conversationID, err)
	}

	rows, err := db.Query(
		`SELECT payload, created_at FROM messages WHERE conversation_id = ? ORDER BY sequence_number ASC`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("history: querying messages for %s: %w", conversationID, err)
	}
	defer rows.Close()

	for rows.Next() {
		msg := &Message{}
		var payload []byte
		if err := rows.Scan(&payload, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scanning message for %s: %w", conversationID, err)
		}
		msg.Payload = json.RawMessage(payload)
		conv.Messages = append(conv.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterating messages for %s: %w", conversationID, err)
	}

	return conv, nil
}

// Load retrieves a conversation from the DefaultDatabasePath.
func Load(conversationID string) (*Conversation, error) {
	return LoadFrom(conversationID, DefaultDatabasePath)
}

// Package history persists travel-buddy chat transcripts in a local SQLite
// database so a session can be resumed later.
package history

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DefaultDatabasePath is where the history database lives unless
// configured otherwise.
var DefaultDatabasePath = ".travelbuddy/history.db"

// ErrConversationNotFound is returned when a requested conversation does
// not exist in the database.
var ErrConversationNotFound = errors.New("history: conversation not found")

// Message is a single turn of a conversation. Payload holds the serialized
// model content as stored; callers unmarshal it into their own types.
type Message struct {
	Payload   json.RawMessage
	CreatedAt time.Time
}

// Conversation is an ordered transcript with a stable ID.
type Conversation struct {
	ID        string
	Messages  []*Message
	CreatedAt time.Time
}

// ConversationMetadata summarizes a stored conversation for listings.
type ConversationMetadata struct {
	ID           string
	CreatedAt    time.Time
	MessageCount int
}

// New creates an empty conversation with a fresh random ID.
func New() (*Conversation, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &Conversation{
		ID:        id.String(),
		Messages:  make([]*Message, 0),
		CreatedAt: time.Now(),
	}, nil
}

// Append adds payload as the next message of the conversation. The payload
// must be JSON-marshalable.
func (c *Conversation) Append(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("history: marshalling message: %w", err)
	}
	c.Messages = append(c.Messages, &Message{
		Payload:   data,
		CreatedAt: time.Now(),
	})
	return nil
}

// initDB ensures the database directory, file, and schema exist.
func initDB(dataSourceName string) (*sql.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// SaveTo persists the conversation to the database at dbPath. Existing
// messages for the same conversation ID are replaced.
func SaveTo(conversation *Conversation, dbPath string) error {
	db, err := initDB(dbPath)
	if err != nil {
		return fmt.Errorf("history: opening database %s: %w", dbPath, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR IGNORE INTO conversations (id, created_at) VALUES (?, ?)`,
		conversation.ID, conversation.CreatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM messages WHERE conversation_id = ?`, conversation.ID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO messages (conversation_id, sequence_number, payload, created_at) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, msg := range conversation.Messages {
		if _, err := stmt.Exec(conversation.ID, i, []byte(msg.Payload), msg.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Save persists the conversation to the DefaultDatabasePath.
func Save(conversation *Conversation) error {
	return SaveTo(conversation, DefaultDatabasePath)
}

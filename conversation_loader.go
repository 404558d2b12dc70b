package travelbuddy

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy/history"
)

// LoadConversationFromFile reads a JSON file and deserializes it into the
// initial conversation history. Errors degrade to an empty history with a
// logged warning so a bad file never blocks starting a chat.
func LoadConversationFromFile(filepath string) []*genai.Content {
	if filepath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		log.Printf("Warning: Error reading conversation file %q: %v. Starting with empty history.", filepath, err)
		return nil
	}

	var initialConversation []*genai.Content
	if err := json.Unmarshal(data, &initialConversation); err != nil {
		log.Printf("Warning: Error unmarshalling conversation JSON from %q: %v. Starting with empty history.", filepath, err)
		return nil
	}

	fmt.Printf("Loaded %d initial conversation entries from %s\n", len(initialConversation), filepath)
	return initialConversation
}

// ContentsFromConversation converts a stored transcript back into genai
// history entries.
func ContentsFromConversation(conversation *history.Conversation) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(conversation.Messages))
	for i, msg := range conversation.Messages {
		var content genai.Content
		if err := json.Unmarshal(msg.Payload, &content); err != nil {
			return nil, fmt.Errorf("unmarshalling message %d of conversation %s: %w", i, conversation.ID, err)
		}
		contents = append(contents, &content)
	}
	return contents, nil
}

// LoadLatestConversation loads the most recent transcript from the history
// database, or nil when the database holds none.
func LoadLatestConversation(dbPath string) ([]*genai.Content, error) {
	id, err := history.LatestConversationID(dbPath)
	if err != nil {
		if errors.Is(err, history.ErrConversationNotFound) {
			return nil, nil
		}
		return nil, err
	}

	conversation, err := history.LoadFrom(id, dbPath)
	if err != nil {
		return nil, err
	}

	contents, err := ContentsFromConversation(conversation)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Resuming conversation %s (%d entries)\n", id, len(contents))
	return contents, nil
}

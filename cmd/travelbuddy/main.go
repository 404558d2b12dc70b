package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy"
	"github.com/dhamidi/travelbuddy/config"
	"github.com/dhamidi/travelbuddy/history"
)

func main() {
	var (
		configPath       string
		modelName        string
		conversationPath string
		resume           bool
		listHistory      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.StringVar(&modelName, "model", "", "Model name override")
	flag.StringVar(&conversationPath, "conversation", "", "Path to a JSON file to initialize the conversation")
	flag.StringVar(&conversationPath, "c", "", "Path to a JSON file to initialize the conversation (shorthand)")
	flag.BoolVar(&resume, "resume", false, "Resume the most recent saved conversation")
	flag.BoolVar(&listHistory, "history", false, "List saved conversations and exit")
	flag.Parse()

	// Not every setup has a .env file; that's fine.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if modelName != "" {
		cfg.Model = modelName
	}

	if listHistory {
		if err := printHistory(cfg.HistoryDB); err != nil {
			log.Fatalf("Error listing history: %v", err)
		}
		return
	}

	var initialConversation []*genai.Content
	switch {
	case resume:
		initialConversation, err = travelbuddy.LoadLatestConversation(cfg.HistoryDB)
		if err != nil {
			log.Fatalf("Error resuming conversation: %v", err)
		}
	case conversationPath != "":
		initialConversation = travelbuddy.LoadConversationFromFile(conversationPath)
	}

	if err := travelbuddy.Chat(cfg, initialConversation); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(dbPath string) error {
	conversations, err := history.ListConversations(dbPath)
	if err != nil {
		return err
	}
	if len(conversations) == 0 {
		fmt.Println("No saved conversations.")
		return nil
	}
	for _, meta := range conversations {
		fmt.Printf("%s  %s  %d messages\n", meta.ID, meta.CreatedAt.Format("2006-01-02 15:04:05"), meta.MessageCount)
	}
	return nil
}

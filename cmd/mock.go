package cmd

import (
	"fmt"

	"github.com/saravenpi/stencil/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var mockSeed uint64

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Print a generated chat dataset as YAML",
	Args:  cobra.NoArgs,
	RunE:  runMock,
}

func init() {
	mockCmd.Flags().Uint64Var(&mockSeed, "seed", 0, "Seed for mock chat data (0 uses the config or the clock)")
	rootCmd.AddCommand(mockCmd)
}

type mockMessage struct {
	ID     int    `yaml:"id"`
	Sender string `yaml:"sender"`
	Text   string `yaml:"text"`
	Time   string `yaml:"time"`
	Read   bool   `yaml:"read"`
	Mine   bool   `yaml:"mine"`
}

type mockChat struct {
	ID       int           `yaml:"id"`
	User     string        `yaml:"user"`
	Unread   int           `yaml:"unread"`
	Messages []mockMessage `yaml:"messages"`
}

func toMockChats(chats []models.Chat) []mockChat {
	out := make([]mockChat, len(chats))
	for i, chat := range chats {
		messages := make([]mockMessage, len(chat.Messages))
		for j, m := range chat.Messages {
			messages[j] = mockMessage{
				ID:     m.ID,
				Sender: m.SenderName,
				Text:   m.Text,
				Time:   m.Time,
				Read:   m.IsRead,
				Mine:   m.IsMine,
			}
		}
		out[i] = mockChat{
			ID:       chat.ID,
			User:     chat.UserName,
			Unread:   chat.UnreadCount(),
			Messages: messages,
		}
	}
	return out
}

func runMock(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = mockSeed
	}

	data, err := yaml.Marshal(toMockChats(newGenerator(cfg).Chats()))
	if err != nil {
		return fmt.Errorf("failed to marshal chats: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

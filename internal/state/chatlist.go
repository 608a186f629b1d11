package state

import (
	"github.com/saravenpi/stencil/internal/models"
	"github.com/saravenpi/stencil/internal/store"
)

// ChatSource supplies the chats shown on the chat list.
type ChatSource interface {
	Chats() []models.Chat
}

type ChatListState struct {
	// SearchQuery is captured as typed. The chat list is not filtered by it.
	SearchQuery string
	Chats       []models.Chat
}

type ChatList struct {
	*store.Store[ChatListState]
	source ChatSource
}

// NewChatList creates the container and loads the first batch of chats.
func NewChatList(source ChatSource) *ChatList {
	c := &ChatList{
		Store:  store.New("ChatList", ChatListState{}),
		source: source,
	}
	c.LoadChats()
	return c
}

func (c *ChatList) SetSearchQuery(query string) {
	c.Update(func(s ChatListState) ChatListState {
		s.SearchQuery = query
		return s
	})
}

func (c *ChatList) ClearSearch() {
	c.SetSearchQuery("")
}

// LoadChats replaces the chat list with a fresh batch from the source.
func (c *ChatList) LoadChats() {
	chats := c.source.Chats()
	c.Update(func(s ChatListState) ChatListState {
		s.Chats = chats
		return s
	})
}

// UnreadTotal counts unread messages across all chats.
func (s ChatListState) UnreadTotal() int {
	total := 0
	for _, chat := range s.Chats {
		total += chat.UnreadCount()
	}
	return total
}

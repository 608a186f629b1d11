package models

type Chat struct {
	ID       int
	UserName string
	Messages []Message
}

type Message struct {
	ID             int
	Text           string
	IsRead         bool
	Time           string
	SenderName     string
	ShowSenderName bool
	IsMine         bool
}

// LastMessage returns the most recent message, if any.
func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// IsUnread reports whether any message in the chat is unread.
func (c Chat) IsUnread() bool {
	for _, m := range c.Messages {
		if !m.IsRead {
			return true
		}
	}
	return false
}

func (c Chat) UnreadCount() int {
	count := 0
	for _, m := range c.Messages {
		if !m.IsRead {
			count++
		}
	}
	return count
}

// NeedsSenderName reports whether the message at index i starts a new run of
// messages from the same sender.
func NeedsSenderName(messages []Message, i int) bool {
	if i <= 0 {
		return true
	}
	return messages[i-1].SenderName != messages[i].SenderName
}

// WithSenderNames returns a copy of chat with ShowSenderName recomputed for
// every message. The input chat is left untouched.
func WithSenderNames(chat Chat) Chat {
	messages := make([]Message, len(chat.Messages))
	for i, m := range chat.Messages {
		m.ShowSenderName = NeedsSenderName(chat.Messages, i)
		messages[i] = m
	}
	chat.Messages = messages
	return chat
}

package models

import "testing"

func messagesFrom(senders ...string) []Message {
	msgs := make([]Message, len(senders))
	for i, s := range senders {
		msgs[i] = Message{ID: i + 1, SenderName: s, IsRead: true}
	}
	return msgs
}

func TestNeedsSenderName(t *testing.T) {
	msgs := messagesFrom("A", "A", "B", "A")
	want := []bool{true, false, true, true}

	for i := range msgs {
		if got := NeedsSenderName(msgs, i); got != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestWithSenderNames(t *testing.T) {
	chat := Chat{ID: 1, UserName: "Bob", Messages: messagesFrom("Bob", "Bob", "John Doe", "Bob")}

	got := WithSenderNames(chat)

	want := []bool{true, false, true, true}
	for i, m := range got.Messages {
		if m.ShowSenderName != want[i] {
			t.Errorf("message %d: expected ShowSenderName=%v, got %v", i, want[i], m.ShowSenderName)
		}
	}

	for i, m := range chat.Messages {
		if m.ShowSenderName {
			t.Errorf("input message %d was mutated", i)
		}
	}
}

func TestWithSenderNames_OverridesStaleFlags(t *testing.T) {
	msgs := messagesFrom("A", "A")
	msgs[1].ShowSenderName = true

	got := WithSenderNames(Chat{Messages: msgs})
	if got.Messages[1].ShowSenderName {
		t.Error("expected stale flag on repeated sender to be cleared")
	}
}

func TestWithSenderNames_Empty(t *testing.T) {
	got := WithSenderNames(Chat{ID: 7})
	if len(got.Messages) != 0 {
		t.Errorf("expected no messages, got %d", len(got.Messages))
	}
	if got.ID != 7 {
		t.Errorf("expected ID 7, got %d", got.ID)
	}
}

func TestChat_Unread(t *testing.T) {
	tests := []struct {
		name       string
		read       []bool
		wantCount  int
		wantUnread bool
	}{
		{"mixed", []bool{true, false, false}, 2, true},
		{"all read", []bool{true, true, true}, 0, false},
		{"all unread", []bool{false, false}, 2, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := Chat{}
			for i, r := range tt.read {
				chat.Messages = append(chat.Messages, Message{ID: i, IsRead: r})
			}
			if got := chat.UnreadCount(); got != tt.wantCount {
				t.Errorf("expected unread count %d, got %d", tt.wantCount, got)
			}
			if got := chat.IsUnread(); got != tt.wantUnread {
				t.Errorf("expected IsUnread=%v, got %v", tt.wantUnread, got)
			}
		})
	}
}

func TestChat_LastMessage(t *testing.T) {
	if _, ok := (Chat{}).LastMessage(); ok {
		t.Error("expected no last message for empty chat")
	}

	chat := Chat{Messages: []Message{{ID: 1, Text: "first"}, {ID: 2, Text: "second"}}}
	last, ok := chat.LastMessage()
	if !ok {
		t.Fatal("expected a last message")
	}
	if last.Text != "second" {
		t.Errorf("expected 'second', got %q", last.Text)
	}
}

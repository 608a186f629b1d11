package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func openFirstChat(t *testing.T) MessagesModel {
	t.Helper()
	deps := testDeps()
	return NewMessagesModel(deps, nil, deps.Chats.Chats()[0])
}

func TestMessages_ComposeAndSend(t *testing.T) {
	m := openFirstChat(t)
	before := len(m.chat.State().Chat.Messages)

	var model tea.Model = m
	model, _ = model.Update(keyRunes("n"))
	model = typeText(model, "hi")

	msgs := model.(MessagesModel)
	if got := msgs.chat.State().TypingMessage; got != "hi" {
		t.Fatalf("expected typing message 'hi', got %q", got)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	msgs = model.(MessagesModel)
	if got := msgs.chat.State().TypingMessage; got != "" {
		t.Errorf("expected typing message cleared, got %q", got)
	}
	if got := len(msgs.chat.State().Chat.Messages); got != before {
		t.Errorf("expected %d messages after send, got %d", before, got)
	}
}

func TestMessages_EscCancelsCompose(t *testing.T) {
	var model tea.Model = openFirstChat(t)
	model, _ = model.Update(keyRunes("c"))
	model = typeText(model, "draft")

	model, _ = model.Update(key(tea.KeyEsc))
	msgs, ok := model.(MessagesModel)
	if !ok {
		t.Fatalf("expected to stay on MessagesModel, got %T", model)
	}
	if msgs.composing {
		t.Error("expected compose mode to end")
	}
	if got := msgs.chat.State().TypingMessage; got != "" {
		t.Errorf("expected draft discarded, got %q", got)
	}
}

func TestMessages_ViewShowsConversation(t *testing.T) {
	view := openFirstChat(t).View()

	for _, want := range []string{"Alice", "Hey, how are you?", "Okay, see you soon."} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got:\n%s", want, view)
		}
	}
}

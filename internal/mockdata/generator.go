// Package mockdata produces a plausible chat history for the template. It
// stands in for a real message backend.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/saravenpi/stencil/internal/models"
)

const (
	// DefaultLocalUser is the name messages sent by "me" carry.
	DefaultLocalUser = "John Doe"

	ChatCount   = 20
	minMessages = 3
	maxMessages = 30 // exclusive
)

var userNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Eve",
	"Frank", "Grace", "Hank", "Ivy", "Jack",
	"Karen", "Leo", "Mona", "Nick", "Olivia",
	"Paul", "Quincy", "Rachel", "Sam", "Tina",
}

var phrases = []string{
	"Hey, how are you?",
	"Did you check the file I sent?",
	"Let’s meet tomorrow at 5.",
	"Sure, sounds good!",
	"I’ll call you later.",
	"Don’t forget about the meeting.",
	"That’s awesome news!",
	"What are you doing now?",
	"Okay, see you soon.",
	"Thanks for your help!",
	"Can you send me the link?",
	"I’ll be there in 10 minutes.",
}

type Generator struct {
	mu        sync.Mutex
	rand      *rand.Rand
	now       func() time.Time
	localUser string
}

type Option func(*Generator)

// WithRand sets the random source. The generator serializes access to it.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithSeed makes output reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rand = rand.New(rand.NewPCG(seed, seed)) }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithLocalUser(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.localUser = name
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:       time.Now,
		localUser: DefaultLocalUser,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		seed := uint64(g.now().UnixNano())
		g.rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return g
}

func (g *Generator) LocalUser() string { return g.localUser }

// Chats returns ChatCount freshly generated chats. Partner names are drawn
// with replacement, so two chats may share a name.
func (g *Generator) Chats() []models.Chat {
	g.mu.Lock()
	defer g.mu.Unlock()

	chats := make([]models.Chat, 0, ChatCount)
	for chatIndex := 1; chatIndex <= ChatCount; chatIndex++ {
		userName := pick(g.rand, userNames)
		count := minMessages + g.rand.IntN(maxMessages-minMessages)
		senders := [2]string{userName, g.localUser}

		messages := make([]models.Message, 0, count)
		for messageIndex := 1; messageIndex <= count; messageIndex++ {
			sender := senders[g.rand.IntN(len(senders))]
			messages = append(messages, models.Message{
				ID:         chatIndex*100 + messageIndex,
				Text:       pick(g.rand, phrases),
				IsRead:     g.rand.IntN(2) == 0,
				Time:       formatClock(g.now()),
				SenderName: sender,
				IsMine:     sender == g.localUser,
			})
		}

		chats = append(chats, models.Chat{
			ID:       chatIndex,
			UserName: userName,
			Messages: messages,
		})
	}
	return chats
}

func pick(r *rand.Rand, pool []string) string {
	return pool[r.IntN(len(pool))]
}

// formatClock renders t as zero-padded HH:MM.
func formatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

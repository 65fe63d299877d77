// Package chat holds the conversation session controller: local message
// history, the typing-reveal playback for received replies, scroll state
// and the request lifecycle for a single conversation.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"artisan-service/internal/domain"
	"artisan-service/pkg/xerrors"
)

// State is the session's request lifecycle phase.
type State int

const (
	// StateIdle means no outstanding request; input is accepted.
	StateIdle State = iota
	// StateAwaitingResponse means one completion request is in flight.
	StateAwaitingResponse
	// StateRevealing means the received reply is being played back
	// character by character.
	StateRevealing
)

// DefaultRevealInterval is the playback cadence per character. The full
// reply has already arrived when the reveal starts; this is presentation
// only, not streaming.
const DefaultRevealInterval = 20 * time.Millisecond

// apologyText is appended whole when the completion request fails.
const apologyText = "I apologize, but I'm having trouble connecting right now. Please try again later or contact me directly."

// Completer produces one assistant reply for a conversation history.
type Completer interface {
	Complete(ctx context.Context, history []domain.Message) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithRevealInterval overrides the playback cadence. Zero or negative
// reveals without delay.
func WithRevealInterval(d time.Duration) Option {
	return func(s *Session) { s.revealInterval = d }
}

// WithOnUpdate registers a sink invoked after every history mutation with a
// snapshot and whether the view should follow to the bottom.
func WithOnUpdate(fn func(msgs []domain.Message, autoScroll bool)) Option {
	return func(s *Session) { s.onUpdate = fn }
}

// WithLogger attaches a logger. Defaults to a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session manages one conversation with one chat partner. All mutations to
// the history are mirrored to the injected HistoryStore; at most one
// completion request is outstanding at a time.
type Session struct {
	partnerID string
	greeting  string

	store     HistoryStore
	completer Completer

	revealInterval time.Duration
	onUpdate       func([]domain.Message, bool)
	logger         *zap.Logger

	// Scroll tracks the user's position in the chat view.
	Scroll *ScrollTracker

	mu         sync.Mutex
	state      State
	messages   []domain.Message
	turn       int // bumped to orphan in-flight work
	stopReveal chan struct{}
}

// NewSession restores (or starts) the conversation with the given partner.
// A fresh conversation is seeded with the greeting message and persisted.
func NewSession(ctx context.Context, partnerID, greeting string, store HistoryStore, completer Completer, opts ...Option) (*Session, error) {
	s := &Session{
		partnerID:      partnerID,
		greeting:       greeting,
		store:          store,
		completer:      completer,
		revealInterval: DefaultRevealInterval,
		logger:         zap.NewNop(),
		Scroll:         NewScrollTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}

	msgs, err := store.Load(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		msgs = []domain.Message{{Sender: domain.SenderBot, Text: greeting}}
		if err := store.Save(ctx, partnerID, msgs); err != nil {
			return nil, err
		}
	}
	s.messages = msgs
	return s, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a snapshot of the history.
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Send submits user input. Blank input or input arriving while a response
// is still pending or revealing is a no-op: the history is left unchanged
// and the corresponding sentinel is returned.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if text == "" {
		s.mu.Unlock()
		return xerrors.ErrEmptyMessage
	}
	if s.state != StateIdle {
		s.mu.Unlock()
		return xerrors.ErrSessionBusy
	}

	s.state = StateAwaitingResponse
	s.turn++
	turn := s.turn
	s.Scroll.Pin()
	s.appendLocked(ctx, domain.Message{Sender: domain.SenderUser, Text: text})
	history := s.snapshotLocked()
	s.mu.Unlock()

	// Stopping the session never cancels the network call; a stale result
	// is simply discarded on arrival.
	go s.request(context.WithoutCancel(ctx), turn, history)
	return nil
}

func (s *Session) request(ctx context.Context, turn int, history []domain.Message) {
	reply, err := s.completer.Complete(ctx, history)

	s.mu.Lock()
	if s.turn != turn || s.state != StateAwaitingResponse {
		// Stopped or cleared while in flight; discard.
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.logger.Warn("completion failed", zap.String("partner", s.partnerID), zap.Error(err))
		s.appendLocked(ctx, domain.Message{Sender: domain.SenderBot, Text: apologyText})
		s.state = StateIdle
		s.mu.Unlock()
		return
	}

	s.appendLocked(ctx, domain.Message{Sender: domain.SenderBot, Text: ""})
	s.state = StateRevealing
	stop := make(chan struct{})
	s.stopReveal = stop
	s.mu.Unlock()

	go s.reveal(ctx, turn, reply, stop)
}

// reveal plays the already-received reply into the last message one
// character at a time.
func (s *Session) reveal(ctx context.Context, turn int, reply string, stop chan struct{}) {
	var tick <-chan time.Time
	if s.revealInterval > 0 {
		ticker := time.NewTicker(s.revealInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	runes := []rune(reply)
	for i := range runes {
		if tick != nil {
			select {
			case <-stop:
				return
			case <-tick:
			}
		} else {
			select {
			case <-stop:
				return
			default:
			}
		}

		s.mu.Lock()
		if s.turn != turn || s.state != StateRevealing {
			s.mu.Unlock()
			return
		}
		s.messages[len(s.messages)-1].Text = string(runes[:i+1])
		s.persistLocked(ctx)
		s.notifyLocked()
		s.mu.Unlock()
	}

	s.mu.Lock()
	if s.turn == turn && s.state == StateRevealing {
		s.state = StateIdle
		s.stopReveal = nil
	}
	s.mu.Unlock()
}

// Stop halts an in-progress reveal, leaving the partially revealed text in
// the history. A request still in flight keeps running; its result is
// discarded when it lands.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRevealing:
		if s.stopReveal != nil {
			close(s.stopReveal)
			s.stopReveal = nil
		}
		s.state = StateIdle
	case StateAwaitingResponse:
		s.turn++
		s.state = StateIdle
	}
}

// Clear wipes the conversation back to the single greeting message, both
// locally and in the persisted store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopReveal != nil {
		close(s.stopReveal)
		s.stopReveal = nil
	}
	s.turn++
	s.state = StateIdle
	s.messages = []domain.Message{{Sender: domain.SenderBot, Text: s.greeting}}

	if err := s.store.Delete(ctx, s.partnerID); err != nil {
		return err
	}
	if err := s.store.Save(ctx, s.partnerID, s.messages); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

func (s *Session) appendLocked(ctx context.Context, m domain.Message) {
	s.messages = append(s.messages, m)
	s.persistLocked(ctx)
	s.notifyLocked()
}

// persistLocked mirrors the history to the store. Persistence is
// best-effort; a failed write never interrupts the conversation.
func (s *Session) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.partnerID, s.messages); err != nil {
		s.logger.Warn("persist chat history", zap.String("partner", s.partnerID), zap.Error(err))
	}
}

func (s *Session) notifyLocked() {
	if s.onUpdate == nil {
		return
	}
	s.onUpdate(s.snapshotLocked(), s.Scroll.ShouldAutoScroll())
}

func (s *Session) snapshotLocked() []domain.Message {
	cp := make([]domain.Message, len(s.messages))
	copy(cp, s.messages)
	return cp
}

package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"artisan-service/internal/chat"
	"artisan-service/internal/domain"
	"artisan-service/internal/persona"
	"artisan-service/internal/provider/groq"
)

// CompletionGateway is the slice of the groq client the service needs:
// one persona-conditioned reply per call, plus the multimodal variant.
type CompletionGateway interface {
	Complete(ctx context.Context, systemPrompt string, history []groq.Message) (string, error)
	Review(ctx context.Context, prompt, image string) (string, error)
}

// ChatService answers as artisan personas and owns the per-conversation
// session controllers.
type ChatService struct {
	profiles ProfileStore
	history  chat.HistoryStore
	gateway  CompletionGateway
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*chat.Session
}

func NewChatService(profiles ProfileStore, history chat.HistoryStore, gateway CompletionGateway, logger *zap.Logger) *ChatService {
	return &ChatService{
		profiles: profiles,
		history:  history,
		gateway:  gateway,
		logger:   logger,
		sessions: make(map[string]*chat.Session),
	}
}

// Reply produces one assistant reply in the seller's voice for a
// client-held conversation history.
func (s *ChatService) Reply(ctx context.Context, sellerID string, history []domain.Message) (string, error) {
	p, err := s.profiles.GetByID(ctx, sellerID)
	if err != nil {
		return "", err
	}
	return s.gateway.Complete(ctx, persona.SystemPrompt(p), toGatewayMessages(history))
}

// AssistantReply produces one reply from the neutral general assistant.
func (s *ChatService) AssistantReply(ctx context.Context, history []domain.Message) (string, error) {
	return s.gateway.Complete(ctx, persona.AssistantPrompt, toGatewayMessages(history))
}

// ReviewImage has the seller review a student's work from an image.
func (s *ChatService) ReviewImage(ctx context.Context, sellerID, image string) (string, error) {
	p, err := s.profiles.GetByID(ctx, sellerID)
	if err != nil {
		return "", err
	}
	return s.gateway.Review(ctx, persona.ReviewPrompt(p), image)
}

// AnalyzeImage describes an image without any persona attached.
func (s *ChatService) AnalyzeImage(ctx context.Context, image string) (string, error) {
	return s.gateway.Review(ctx, "Analyze this image and describe its contents.", image)
}

// SessionFor returns the live session between a caller and a seller,
// restoring or seeding its history from the injected store. One session per
// (caller, seller) pair is kept in memory.
func (s *ChatService) SessionFor(ctx context.Context, callerSubject, sellerID string) (*chat.Session, error) {
	key := callerSubject + ":" + sellerID

	s.mu.Lock()
	if sess, ok := s.sessions[key]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	p, err := s.profiles.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	systemPrompt := persona.SystemPrompt(p)
	completer := completerFunc(func(ctx context.Context, history []domain.Message) (string, error) {
		return s.gateway.Complete(ctx, systemPrompt, toGatewayMessages(history))
	})

	sess, err := chat.NewSession(ctx, key, persona.Greeting(p.Name), s.history, completer,
		chat.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Lost a race to another request; keep the first session.
	if existing, ok := s.sessions[key]; ok {
		return existing, nil
	}
	s.sessions[key] = sess
	return sess, nil
}

type completerFunc func(ctx context.Context, history []domain.Message) (string, error)

func (f completerFunc) Complete(ctx context.Context, history []domain.Message) (string, error) {
	return f(ctx, history)
}

func toGatewayMessages(history []domain.Message) []groq.Message {
	out := make([]groq.Message, 0, len(history))
	for _, m := range history {
		out = append(out, groq.Message{Role: m.Role(), Content: m.Text})
	}
	return out
}

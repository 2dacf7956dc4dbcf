package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
)

// ChatReply is what one turn of conversation produces: either a follow-up
// prompt for the highest-priority missing slot, or a fresh set of
// recommendations once the required slots are filled.
type ChatReply struct {
	SessionID       uuid.UUID              `json:"conversation_id"`
	Status          types.SessionStatus    `json:"status"`
	Message         string                 `json:"message"`
	Recommendations []types.Recommendation `json:"recommendations,omitempty"`
	Preferences     types.PreferenceRecord `json:"extracted_preferences"`
	Missing         []string               `json:"missing,omitempty"`
}

// SessionService drives preference collection. Sessions live in process
// memory only; messages to one session are serialized here so callers can be
// oblivious, while distinct sessions proceed fully in parallel.
type SessionService interface {
	Create(ctx context.Context) *types.Session
	Get(ctx context.Context, id uuid.UUID) (*types.Session, error)
	HandleMessage(ctx context.Context, id uuid.UUID, utterance string) (*ChatReply, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Greeting() string
	ClosedMessage() string
}

type sessionState struct {
	mu      sync.Mutex
	session types.Session
}

type sessionService struct {
	recommender RecommendationService
	limit       int
	copy        BotCopy
	log         *logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionState
}

func NewSessionService(recommender RecommendationService, limit int, baseLog *logger.Logger) SessionService {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	return &sessionService{
		recommender: recommender,
		limit:       limit,
		copy:        loadBotCopy(),
		log:         baseLog.With("service", "SessionService"),
		sessions:    map[uuid.UUID]*sessionState{},
	}
}

func (ss *sessionService) Create(ctx context.Context) *types.Session {
	now := time.Now().UTC()
	s := types.Session{
		ID:        uuid.New(),
		Status:    types.StatusCollecting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ss.mu.Lock()
	ss.sessions[s.ID] = &sessionState{session: s}
	ss.mu.Unlock()

	ss.log.Debug("Session created", "session_id", s.ID.String())
	return &s
}

func (ss *sessionService) Get(_ context.Context, id uuid.UUID) (*types.Session, error) {
	state, err := ss.lookup(id)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	snapshot := state.session
	snapshot.Preferences = state.session.Preferences.Clone()
	return &snapshot, nil
}

func (ss *sessionService) HandleMessage(ctx context.Context, id uuid.UUID, utterance string) (*ChatReply, error) {
	state, err := ss.lookup(id)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.session.Status == types.StatusCompleted {
		return nil, ErrSessionClosed
	}

	updated, missing := ExtractPreferences(utterance, state.session.Preferences)
	state.session.Preferences = updated
	state.session.UpdatedAt = time.Now().UTC()

	reply := &ChatReply{
		SessionID:   state.session.ID,
		Preferences: updated.Clone(),
		Missing:     missing,
	}

	if len(missing) > 0 {
		state.session.Status = types.StatusCollecting
		reply.Status = types.StatusCollecting
		reply.Message = ss.copy.PromptFor(missing[0])
		return reply, nil
	}

	// All required slots filled: recommend fresh on every message so later
	// refinements recompute rather than reset.
	state.session.Status = types.StatusReady
	reply.Status = types.StatusReady
	reply.Recommendations = ss.recommender.Recommend(ctx, updated, ss.limit)
	if len(reply.Recommendations) == 0 {
		reply.Message = ss.copy.NoResults
	} else {
		reply.Message = ss.copy.ResultsFound
	}
	return reply, nil
}

func (ss *sessionService) Complete(_ context.Context, id uuid.UUID) error {
	state, err := ss.lookup(id)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Status = types.StatusCompleted
	state.session.UpdatedAt = time.Now().UTC()
	ss.log.Debug("Session completed", "session_id", id.String())
	return nil
}

func (ss *sessionService) Delete(_ context.Context, id uuid.UUID) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if _, ok := ss.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(ss.sessions, id)
	return nil
}

func (ss *sessionService) Greeting() string { return ss.copy.Greeting }

// ClosedMessage is the user-facing line for messages sent to a completed
// conversation.
func (ss *sessionService) ClosedMessage() string { return ss.copy.SessionClosed }

func (ss *sessionService) lookup(id uuid.UUID) (*sessionState, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	state, ok := ss.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

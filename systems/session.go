package systems

import (
	"sync"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// Session owns one match: the world, both fighters, the match entity and
// the pending round transition. A rematch is a new Session.
type Session struct {
	world     donburi.World
	fighters  [2]*donburi.Entry
	match     *donburi.Entry
	scheduler *Scheduler
	logger    *zap.Logger

	mu     sync.Mutex
	closed bool
}

type sessionOptions struct {
	logger     *zap.Logger
	clock      TimeProvider
	characters [2]cfg.CharacterID
}

// SessionOption configures NewSession.
type SessionOption func(*sessionOptions)

func WithLogger(logger *zap.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// WithTimeProvider sets the clock used for round transition delays.
func WithTimeProvider(clock TimeProvider) SessionOption {
	return func(o *sessionOptions) {
		o.clock = clock
	}
}

func WithCharacters(p1, p2 cfg.CharacterID) SessionOption {
	return func(o *sessionOptions) {
		o.characters = [2]cfg.CharacterID{p1, p2}
	}
}

// NewSession builds the arena and both fighters and starts round 1.
func NewSession(opts ...SessionOption) *Session {
	defaults := cfg.DefaultSettings()
	o := sessionOptions{
		logger:     zap.NewNop(),
		clock:      RealTimeProvider{},
		characters: [2]cfg.CharacterID{defaults.P1Character, defaults.P2Character},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	w := donburi.NewWorld()
	factory.CreateSpace(w)

	s := &Session{
		world:     w,
		match:     factory.CreateMatch(w),
		scheduler: NewScheduler(o.clock),
		logger:    o.logger,
	}
	for i, side := range []cfg.Side{cfg.SideOne, cfg.SideTwo} {
		s.fighters[i] = factory.CreateFighter(w, side, o.characters[i], cfg.Fighter.StartX[i])
	}

	FighterDownEvent.Subscribe(w, s.onFighterDown)

	s.logger.Info("session started",
		zap.String("p1", string(o.characters[0])),
		zap.String("p2", string(o.characters[1])),
	)
	s.startRound()
	return s
}

// Tick advances the session by one frame using each side's control
// snapshot. It returns false without simulating when the session is closed
// or a tick is already running.
func (s *Session) Tick(controls [2]components.ControlState) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	if s.closed {
		return false
	}

	s.scheduler.Poll()

	match := s.Match()
	if match.RoundActive && !match.GameOver {
		for i, e := range s.fighters {
			ApplyControls(e, controls[i])
		}
	}

	UpdateFighter(s.world, s.fighters[0], s.fighters[1])
	UpdateFighter(s.world, s.fighters[1], s.fighters[0])

	s.flushEvents()
	return true
}

// Round-end handling goes first so its announcements reach subscribers in
// the same flush.
func (s *Session) flushEvents() {
	FighterDownEvent.ProcessEvents(s.world)
	events.ProcessAllEvents(s.world)
}

// Close cancels any pending round transition. Further ticks are no-ops.
// It must not be called from an event handler.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.scheduler.Cancel()
	s.logger.Info("session closed")
}

func (s *Session) World() donburi.World {
	return s.world
}

// Fighters returns side 1 and side 2 in order.
func (s *Session) Fighters() [2]*donburi.Entry {
	return s.fighters
}

func (s *Session) Fighter(side cfg.Side) *donburi.Entry {
	return s.fighters[side.Index()]
}

func (s *Session) Match() *components.MatchData {
	return components.Match.Get(s.match)
}

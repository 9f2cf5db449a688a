package systems

import (
	"testing"
	"time"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap/zaptest"
)

var idle [2]components.ControlState

func newTestSession(t *testing.T) (*Session, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	s := NewSession(
		WithTimeProvider(clock),
		WithLogger(zaptest.NewLogger(t)),
		WithCharacters(cfg.Bancho, cfg.BruteArms),
	)
	t.Cleanup(s.Close)
	return s, clock
}

// startFight advances the clock past the round intro and ticks once.
func startFight(t *testing.T, s *Session, clock *MockTimeProvider) {
	t.Helper()
	clock.Advance(cfg.Match.RoundIntroDelay)
	require.True(t, s.Tick(idle))
	require.True(t, s.Match().RoundActive)
}

// knockOutSide drops side's fighter and ticks so the round end is handled.
func knockOutSide(t *testing.T, s *Session, side cfg.Side) {
	t.Helper()
	e := s.Fighter(side)
	components.MeleeAttack.Get(e).HitCooldown = 0
	TakeDamage(s.World(), e, 1000)
	require.True(t, s.Tick(idle))
}

func TestNewSession_StartsRoundOne(t *testing.T) {
	s, _ := newTestSession(t)
	match := s.Match()

	assert.Equal(t, cfg.MatchStatePreRound, match.State)
	assert.Equal(t, 1, match.Round)
	assert.Equal(t, "ROUND 1", match.Announcement)
	assert.False(t, match.RoundActive)
	assert.Equal(t, [2]int{0, 0}, match.Wins)

	p1, p2 := s.Fighter(cfg.SideOne), s.Fighter(cfg.SideTwo)
	assert.Equal(t, 200.0, components.Object.Get(p1).X)
	assert.Equal(t, 920.0, components.Object.Get(p2).X)
	assert.Equal(t, cfg.BruteArms, components.Fighter.Get(p2).Character)
	assert.Equal(t, [2]*donburi.Entry{p1, p2}, s.Fighters())

	name, ok := s.scheduler.Pending()
	assert.True(t, ok)
	assert.Equal(t, taskFight, name)
}

func TestSession_IntentsIgnoredBeforeFight(t *testing.T) {
	s, clock := newTestSession(t)
	p1 := s.Fighter(cfg.SideOne)

	clock.Advance(cfg.Match.RoundIntroDelay - time.Millisecond)
	require.True(t, s.Tick([2]components.ControlState{controls(cfg.ActionMoveRight)}))
	assert.Equal(t, 200.0, components.Object.Get(p1).X)
	assert.False(t, s.Match().RoundActive)

	clock.Advance(time.Millisecond)
	require.True(t, s.Tick([2]components.ControlState{controls(cfg.ActionMoveRight)}))
	assert.Equal(t, cfg.MatchStateActive, s.Match().State)
	assert.Equal(t, "FIGHT!", s.Match().Announcement)
	assert.Equal(t, 206.0, components.Object.Get(p1).X)
}

func TestSession_FightCueClears(t *testing.T) {
	s, clock := newTestSession(t)
	startFight(t, s, clock)

	clock.Advance(cfg.Match.FightCueDuration)
	require.True(t, s.Tick(idle))
	assert.Empty(t, s.Match().Announcement)
	assert.True(t, s.Match().RoundActive)
}

func TestSession_RoundEndAndNextRound(t *testing.T) {
	s, clock := newTestSession(t)

	var dots []WinDotsEventData
	WinDotsEvent.Subscribe(s.World(), func(_ donburi.World, e WinDotsEventData) {
		dots = append(dots, e)
	})

	startFight(t, s, clock)
	knockOutSide(t, s, cfg.SideTwo)

	match := s.Match()
	assert.Equal(t, cfg.MatchStateRoundEnded, match.State)
	assert.False(t, match.RoundActive)
	assert.Equal(t, 1, match.WinsFor(cfg.SideOne))
	assert.Equal(t, 0, match.WinsFor(cfg.SideTwo))
	assert.Equal(t, cfg.SideOne, match.RoundWinner)
	assert.Equal(t, "PLAYER 1 WINS!", match.Announcement)
	assert.Equal(t, 2, match.Round)
	assert.False(t, match.GameOver)
	require.Len(t, dots, 1)
	assert.Equal(t, WinDotsEventData{Side: cfg.SideOne, Count: 1}, dots[0])

	clock.Advance(cfg.Match.RoundEndDelay)
	require.True(t, s.Tick(idle))

	p2 := s.Fighter(cfg.SideTwo)
	assert.Equal(t, cfg.MatchStatePreRound, match.State)
	assert.Equal(t, "ROUND 2", match.Announcement)
	assert.False(t, components.Fighter.Get(p2).Dead)
	assert.Equal(t, 100, components.Health.Get(p2).Current)
	assert.Equal(t, 920.0, components.Object.Get(p2).X)
	assert.Equal(t, cfg.Idle, StateOf(p2))
}

func TestSession_MatchOverAfterTwoWins(t *testing.T) {
	s, clock := newTestSession(t)
	match := s.Match()

	startFight(t, s, clock)
	knockOutSide(t, s, cfg.SideOne)
	clock.Advance(cfg.Match.RoundEndDelay)
	require.True(t, s.Tick(idle))

	startFight(t, s, clock)
	knockOutSide(t, s, cfg.SideOne)

	assert.True(t, match.GameOver)
	assert.Equal(t, cfg.MatchStateMatchOver, match.State)
	assert.Equal(t, cfg.SideTwo, match.Champion)
	assert.Equal(t, [2]int{0, 2}, match.Wins)
	assert.Equal(t, 2, match.Round)
	assert.Equal(t, "PLAYER 2 WINS!", match.Announcement)

	clock.Advance(cfg.Match.ChampionDelay)
	require.True(t, s.Tick(idle))
	assert.Equal(t, "PLAYER 2 IS THE CHAMPION!", match.Announcement)

	_, pending := s.scheduler.Pending()
	assert.False(t, pending)

	// No third round, and no more intents.
	clock.Advance(10 * time.Second)
	p2 := s.Fighter(cfg.SideTwo)
	x := components.Object.Get(p2).X
	require.True(t, s.Tick([2]components.ControlState{{}, controls(cfg.ActionMoveLeft)}))
	assert.Equal(t, 2, match.Round)
	assert.Equal(t, cfg.MatchStateMatchOver, match.State)
	assert.Equal(t, x, components.Object.Get(p2).X)
}

func TestSession_OnlyFirstKnockOutCounts(t *testing.T) {
	s, clock := newTestSession(t)
	startFight(t, s, clock)

	TakeDamage(s.World(), s.Fighter(cfg.SideTwo), 1000)
	TakeDamage(s.World(), s.Fighter(cfg.SideOne), 1000)
	require.True(t, s.Tick(idle))

	assert.Equal(t, [2]int{1, 0}, s.Match().Wins)
	assert.Equal(t, cfg.SideOne, s.Match().RoundWinner)
}

func TestSession_KnockOutOutsideActiveRoundIgnored(t *testing.T) {
	s, _ := newTestSession(t)

	knockOutSide(t, s, cfg.SideTwo)
	assert.Equal(t, [2]int{0, 0}, s.Match().Wins)
	assert.Equal(t, cfg.MatchStatePreRound, s.Match().State)
}

func TestSession_ReentrantTickSkipped(t *testing.T) {
	s, _ := newTestSession(t)

	var nested []bool
	AnnouncementEvent.Subscribe(s.World(), func(donburi.World, AnnouncementEventData) {
		nested = append(nested, s.Tick(idle))
	})

	require.True(t, s.Tick(idle))
	require.NotEmpty(t, nested)
	assert.False(t, nested[0])
}

func TestSession_Close(t *testing.T) {
	s, clock := newTestSession(t)
	s.Close()

	_, pending := s.scheduler.Pending()
	assert.False(t, pending)

	clock.Advance(cfg.Match.RoundIntroDelay)
	assert.False(t, s.Tick(idle))
	assert.Equal(t, cfg.MatchStatePreRound, s.Match().State)
}

func TestSession_RematchIsFreshSession(t *testing.T) {
	s, clock := newTestSession(t)
	startFight(t, s, clock)
	knockOutSide(t, s, cfg.SideTwo)
	s.Close()

	next, _ := newTestSession(t)
	assert.Equal(t, [2]int{0, 0}, next.Match().Wins)
	assert.Equal(t, 1, next.Match().Round)
	assert.False(t, next.Match().GameOver)
}

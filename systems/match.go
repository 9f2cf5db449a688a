package systems

import (
	"fmt"

	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Scheduled transition names.
const (
	taskFight     = "fight"
	taskClearCue  = "clear-announcement"
	taskNextRound = "next-round"
	taskChampion  = "champion"
)

// startRound resets both fighters and announces the round. Intents stay
// disabled until the fight cue.
func (s *Session) startRound() {
	match := s.Match()
	for i, e := range s.fighters {
		ResetFighter(s.world, e, cfg.Fighter.StartX[i])
	}

	match.State = cfg.MatchStatePreRound
	match.RoundActive = false
	match.RoundWinner = cfg.SideNone
	s.announce(fmt.Sprintf("ROUND %d", match.Round))
	for _, e := range s.fighters {
		publishHealthMeter(s.world, e)
	}

	s.logger.Info("round starting", zap.Int("round", match.Round))
	s.scheduler.Schedule(taskFight, cfg.Match.RoundIntroDelay, s.beginFight)
}

func (s *Session) beginFight() {
	match := s.Match()
	match.State = cfg.MatchStateActive
	match.RoundActive = true
	s.announce("FIGHT!")
	s.scheduler.Schedule(taskClearCue, cfg.Match.FightCueDuration, s.clearAnnouncement)
}

func (s *Session) clearAnnouncement() {
	s.announce("")
}

func (s *Session) onFighterDown(_ donburi.World, e FighterDownEventData) {
	s.endRound(e.Side)
}

// endRound credits the side that did not go down. Only the first knockout
// of an active round counts.
func (s *Session) endRound(loser cfg.Side) {
	match := s.Match()
	if match.State != cfg.MatchStateActive || !match.RoundActive {
		return
	}

	winner := loser.Opponent()
	match.RoundActive = false
	match.State = cfg.MatchStateRoundEnded
	match.RoundWinner = winner
	wins := match.AddWin(winner)

	s.announce(fmt.Sprintf("PLAYER %d WINS!", winner))
	WinDotsEvent.Publish(s.world, WinDotsEventData{Side: winner, Count: wins})

	s.logger.Info("round over",
		zap.Int("round", match.Round),
		zap.Int("side", int(winner)),
		zap.Int("wins", wins),
	)

	if wins >= cfg.Match.WinsRequired {
		match.GameOver = true
		match.Champion = winner
		match.State = cfg.MatchStateMatchOver
		s.scheduler.Schedule(taskChampion, cfg.Match.ChampionDelay, s.crownChampion)
		return
	}

	match.Round++
	s.scheduler.Schedule(taskNextRound, cfg.Match.RoundEndDelay, s.startRound)
}

func (s *Session) crownChampion() {
	match := s.Match()
	s.announce(fmt.Sprintf("PLAYER %d IS THE CHAMPION!", match.Champion))
	s.logger.Info("match over", zap.Int("side", int(match.Champion)), zap.Ints("wins", match.Wins[:]))
}

func (s *Session) announce(text string) {
	match := s.Match()
	match.Announcement = text
	AnnouncementEvent.Publish(s.world, AnnouncementEventData{Text: text, Round: match.Round})
}

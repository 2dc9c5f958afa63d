package session

import (
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func (s *Session) loadRecord(key string) int {
	if s.records == nil {
		return 0
	}
	v, err := s.records.LoadRecord(key)
	if err != nil {
		s.logger.Warn("cannot load record", "key", key, "err", err)
		return 0
	}
	return max(v, 0)
}

// saveRecord persists value under key. Storage errors are logged; play
// continues with the in-memory value.
func (s *Session) saveRecord(key string, value int) {
	if s.records == nil {
		return
	}
	if err := s.records.SaveRecord(key, value); err != nil {
		s.logger.Warn("cannot save record", "key", key, "value", value, "err", err)
		return
	}
	s.logger.Debug("record saved", "key", key, "value", value)
}

func (s *Session) onScoreChange(_, highScore int) {
	if highScore > s.highScore {
		s.highScore = highScore
		s.saveRecord(storage.KeyHighScore, highScore)
	}
}

func (s *Session) onLevelChange(level int) {
	if level > s.maxLevel {
		s.maxLevel = level
		s.saveRecord(storage.KeyMaxLevel, level)
	}
}

func (s *Session) onStateChange(state invaders.State) {
	s.logger.Debug("state changed", "state", state, "level", s.game.Level(), "score", s.game.Score())
	if state == invaders.StateGameOver {
		s.saveRun()
	}
}

// saveRun records the finished run once. Empty runs are not worth a row.
func (s *Session) saveRun() {
	if s.runSaved || s.runs == nil {
		return
	}
	s.runSaved = true
	if s.game.Score() <= 0 {
		return
	}

	run := storage.Run{
		Player:   s.player,
		Score:    s.game.Score(),
		Level:    s.game.Level(),
		Victory:  s.game.Victory(),
		Duration: s.clock().Sub(s.startedAt),
	}
	id, err := s.runs.SaveRun(run)
	if err != nil {
		s.logger.Warn("cannot save run", "score", run.Score, "err", err)
		return
	}
	s.logger.Info("run saved", "id", id, "score", run.Score, "level", run.Level, "victory", run.Victory)
}

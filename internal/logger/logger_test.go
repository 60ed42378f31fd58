package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-statblock/internal/config"
	"github.com/KirkDiggler/rpg-statblock/internal/logger"
)

type LoggerTestSuite struct {
	suite.Suite
	buf *bytes.Buffer
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
}

func (s *LoggerTestSuite) newLogger(level, style string) *slog.Logger {
	return logger.New(s.buf, &config.Config{LogLevel: level, LogStyle: style})
}

func (s *LoggerTestSuite) TestPlainLine() {
	l := s.newLogger("info", config.StyleNever)

	l.Info("creature decoded", "name", "Goblin", "bytes", 42)

	line := strings.TrimSuffix(s.buf.String(), "\n")
	s.Assert().True(strings.HasSuffix(line, "[INFO ] creature decoded name=Goblin bytes=42"), line)
	s.Assert().NotContains(line, "\x1b[")
}

func (s *LoggerTestSuite) TestLevelFiltering() {
	l := s.newLogger("warn", config.StyleNever)

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("shown")
	l.Error("also shown")

	out := s.buf.String()
	s.Assert().NotContains(out, "hidden")
	s.Assert().Contains(out, "[WARN ] shown")
	s.Assert().Contains(out, "[ERROR] also shown")
}

func (s *LoggerTestSuite) TestTraceAndOff() {
	l := s.newLogger("trace", config.StyleNever)
	l.Log(context.Background(), config.LevelTrace, "deep detail")
	l.Debug("detail")
	s.Assert().Contains(s.buf.String(), "[TRACE] deep detail")
	s.Assert().Contains(s.buf.String(), "[DEBUG] detail")

	s.buf.Reset()
	l = s.newLogger("off", config.StyleNever)
	l.Error("nothing")
	s.Assert().Empty(s.buf.String())
}

func (s *LoggerTestSuite) TestStyleAlwaysColorsLevel() {
	l := s.newLogger("info", config.StyleAlways)
	l.Warn("type line not recognized")

	out := s.buf.String()
	s.Assert().Contains(out, "\x1b[")
	s.Assert().Contains(out, "type line not recognized")
}

func (s *LoggerTestSuite) TestStyleAutoWithoutTerminal() {
	l := s.newLogger("info", config.StyleAuto)
	l.Warn("plain")
	s.Assert().NotContains(s.buf.String(), "\x1b[")
}

func (s *LoggerTestSuite) TestQuotingAndErrors() {
	l := s.newLogger("info", config.StyleNever)
	l.Info("read", "type", "Large dragon (chromatic)", "empty", "", "err", errors.New("boom"))

	out := s.buf.String()
	s.Assert().Contains(out, `type="Large dragon (chromatic)"`)
	s.Assert().Contains(out, `empty=""`)
	s.Assert().Contains(out, "err=boom")
}

func (s *LoggerTestSuite) TestWithAttrsAndGroup() {
	l := s.newLogger("info", config.StyleNever).
		With("path", "goblin.json").
		WithGroup("creature")

	l.Info("decoded", "name", "Goblin", slog.Group("hp", "value", 7))

	s.Assert().Contains(s.buf.String(), "decoded path=goblin.json creature.name=Goblin creature.hp.value=7")
}

func (s *LoggerTestSuite) TestNilConfigUsesDefaults() {
	l := logger.New(s.buf, nil)
	l.Debug("hidden")
	l.Info("shown")

	s.Assert().NotContains(s.buf.String(), "hidden")
	s.Assert().Contains(s.buf.String(), "shown")
}

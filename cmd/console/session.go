package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/scenario"
)

// exchange is one command and the text the engine printed in reply.
// The opening exchange has no input.
type exchange struct {
	input  string
	output string
}

// session runs an engine in memory and keeps the transcript for the UI.
type session struct {
	file    string
	name    string
	engine  *engine.Engine
	buf     bytes.Buffer
	history []exchange
}

func newSession(s *scenario.Scenario, file string, seed int64, log *slog.Logger) (*session, error) {
	w, err := scenario.Build(s)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenario %s: %w", file, err)
	}

	sess := &session{file: file, name: s.Name}
	sess.engine = engine.New(w, &sess.buf,
		engine.WithRoller(actor.NewRandomRoller(seed)),
		engine.WithLogger(log),
		engine.WithPrompt(""),
	)
	sess.engine.Start()
	sess.flush("")
	return sess, nil
}

// submit plays one turn. It returns false once the game is over.
func (s *session) submit(line string) bool {
	running := s.engine.Submit(line)
	s.flush(line)
	return running
}

func (s *session) over() bool {
	return s.engine.State() == engine.GameOver
}

func (s *session) flush(input string) {
	s.history = append(s.history, exchange{
		input:  input,
		output: strings.TrimRight(s.buf.String(), "\n"),
	})
	s.buf.Reset()
}

// plain renders the transcript without styling, as a player would see it
// in a terminal.
func (s *session) plain() string {
	var b strings.Builder
	for _, ex := range s.history {
		if ex.input != "" {
			b.WriteString("> " + ex.input + "\n")
		}
		if ex.output != "" {
			b.WriteString(ex.output + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

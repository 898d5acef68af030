package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

const helpText = `commands:
  start              start a new game, red moves first
  stop               abandon the current game
  <from> <to>        move a piece, e.g. "b3 e3" (columns a-i, rows 1-10)
  moves <square>     list where the piece on <square> may go
  retract            take back the last move
  save <file>        save the game
  load <file>        load a saved game
  fen                print the position
  help               show this text
  quit               leave`

// Session dispatches text commands to a Game and prints the results.
type Session struct {
	Game    *game.Game
	Out     io.Writer
	Color   bool
	SaveDir string
}

func NewSession(g *game.Game, out io.Writer) *Session {
	return &Session{Game: g, Out: out}
}

// Run reads commands line by line until quit or EOF.
func (s *Session) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	s.printf("xiangqi. type \"help\" for commands, \"start\" to begin.\n")
	for {
		s.printf("> ")
		if !sc.Scan() {
			return sc.Err()
		}
		if quit := s.Execute(sc.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the session should end.
func (s *Session) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return true
	case "help":
		s.printf("%s\n", helpText)
	case "start":
		if s.report(s.Game.Start()) {
			s.printf("game started, red moves first\n")
			s.render()
		}
	case "stop":
		if s.report(s.Game.Stop()) {
			s.printf("game stopped\n")
		}
	case "retract":
		rec, err := s.Game.Retract()
		if s.report(err) {
			s.printf("took back %s %s\n", FormatSquare(rec.From), FormatSquare(rec.To))
			s.render()
		}
	case "save", "load":
		if len(fields) < 2 {
			s.printf("usage: %s <file>\n", cmd)
			return false
		}
		path := s.path(fields[1])
		if cmd == "save" {
			if s.report(s.Game.Save(path)) {
				s.printf("game saved to %s\n", path)
			}
			return false
		}
		if s.report(s.Game.Load(path)) {
			s.printf("game loaded from %s\n", path)
			s.render()
		}
	case "moves":
		if len(fields) < 2 {
			s.printf("usage: moves <square>\n")
			return false
		}
		s.listMoves(fields[1])
	case "fen":
		b := s.Game.Board()
		s.printf("%s\n", xiangqi.EncodeFEN(&b, s.Game.Turn()))
	default:
		if len(fields) != 2 {
			s.printf("unknown command %q, type \"help\"\n", fields[0])
			return false
		}
		s.move(fields[0], fields[1])
	}
	return false
}

func (s *Session) move(fromText, toText string) {
	from, err := ParseSquare(fromText)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	to, err := ParseSquare(toText)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	res, err := s.Game.Move(from, to)
	if !s.report(err) {
		return
	}
	s.printf("%s\n", res)
	s.render()
	if s.Game.Status() == game.Over {
		s.printf("game over, %s wins\n", s.Game.Winner())
	}
}

func (s *Session) listMoves(sq string) {
	from, err := ParseSquare(sq)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	dests := s.Game.LegalMoves(from)
	if len(dests) == 0 {
		s.printf("no moves from %s\n", FormatSquare(from))
		return
	}
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = FormatSquare(d)
	}
	s.printf("%s: %s\n", FormatSquare(from), strings.Join(names, " "))
}

func (s *Session) path(name string) string {
	if s.SaveDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.SaveDir, name)
}

func (s *Session) report(err error) bool {
	if err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	return true
}

func (s *Session) render() {
	b := s.Game.Board()
	if err := Render(s.Out, &b, s.Color); err != nil {
		return
	}
	if s.Game.Status() == game.InProgress {
		turn := s.Game.Turn()
		if s.Game.InCheck() {
			s.printf("%s to move (in check)\n", turn)
		} else {
			s.printf("%s to move\n", turn)
		}
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

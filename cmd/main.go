package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/mental-rps/config"
	"github.com/luca-patrignani/mental-rps/domain/commitment"
	"github.com/luca-patrignani/mental-rps/domain/rps"
	"github.com/luca-patrignani/mental-rps/ledger"
)

const usage = `usage: %[1]s <move> <move> <move> [<move> ...]
       %[1]s verify <key> <move> <hmac>

Give an odd number (3 or more) of distinct moves. Each move beats the
(N-1)/2 moves listed after it, wrapping around.
Example: %[1]s Rock Scissors Paper
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	args := os.Args[1:]
	if len(args) == 4 && args[0] == "verify" {
		if err := runVerify(os.Stdout, args[1:]); err != nil {
			logger.Error("verification failed", "error", err)
			os.Exit(1)
		}
		return
	}

	game, err := rps.NewGame(args, commitment.NewSystemEntropy())
	if err != nil {
		pterm.Error.Println(err.Error())
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(1)
	}

	if cfg.Banner {
		pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("M", pterm.FgRed.ToStyle()),
			putils.LettersFromStringWithStyle("ental ", pterm.FgDarkGray.ToStyle()),
			putils.LettersFromStringWithStyle("RPS", pterm.FgRed.ToStyle()),
		).Render()
	}

	s := &session{
		game:   game,
		ledger: ledger.NewLedger(game.Relation()),
		logger: logger,
		out:    os.Stdout,
		input: func() (string, error) {
			return pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your move").Show()
		},
	}
	logger.Info("session started", "moves", strings.Join(game.Moves().Names(), ","))
	if err := s.run(); err != nil {
		logger.Error("session aborted", "error", err)
		os.Exit(1)
	}
	if err := s.close(cfg.Transcript); err != nil {
		logger.Error("transcript verification failed", "error", err)
		os.Exit(1)
	}
}

// newLogger returns a slog logger writing through pterm.
func newLogger(cfg config.Config) *slog.Logger {
	pl := pterm.DefaultLogger.WithLevel(logLevel(cfg.LogLevel))
	if cfg.LogJSON {
		pl = pl.WithFormatter(pterm.LogFormatterJSON)
	}
	return slog.New(pterm.NewSlogHandler(pl))
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

type command int

const (
	cmdMove command = iota
	cmdExit
	cmdHelp
	cmdUnknown
)

// parseInput maps a menu entry to a command. Numbers are 1-based in the
// menu; the returned index is 0-based and not range checked, the round
// does that.
func parseInput(line string) (command, int) {
	line = strings.TrimSpace(line)
	switch line {
	case "0":
		return cmdExit, 0
	case "?":
		return cmdHelp, 0
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return cmdUnknown, 0
	}
	return cmdMove, n - 1
}

// session is the console loop around the core. It owns all waiting on the
// human; each iteration is one rps.Round.
type session struct {
	game   *rps.Game
	ledger *ledger.Ledger
	logger *slog.Logger
	out    io.Writer
	input  func() (string, error)
}

func (s *session) run() error {
	for {
		quit, err := s.playRound()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// playRound shows the commitment, then asks until it gets a valid move, the
// exit command or an input error.
func (s *session) playRound() (quit bool, err error) {
	round := s.game.NewRound()
	c, err := round.Start()
	if err != nil {
		return false, fmt.Errorf("start round: %w", err)
	}
	number := s.ledger.Rounds() + 1
	s.logger.Debug("round committed", "round", number, "hmac", string(c))
	pterm.Fprintln(s.out, commitmentBox(number, c))

	for {
		pterm.Fprintln(s.out, menu(s.game.Moves()))
		line, err := s.input()
		if err != nil {
			return false, fmt.Errorf("read move: %w", err)
		}
		cmd, choice := parseInput(line)
		switch cmd {
		case cmdExit:
			pterm.Fprintln(s.out, pterm.Info.Sprintln("Exiting the game."))
			return true, nil
		case cmdHelp:
			table, err := rulesTable(s.game.Relation())
			if err != nil {
				return false, err
			}
			pterm.Fprintln(s.out, table)
			continue
		case cmdUnknown:
			pterm.Fprintln(s.out, pterm.Error.Sprintfln("%q is not a menu entry", line))
			continue
		}

		res, err := round.Complete(choice)
		if errors.Is(err, rps.ErrInvalidChoice) {
			pterm.Fprintln(s.out, pterm.Error.Sprintfln("%d is not a menu entry", choice+1))
			continue
		}
		if err != nil {
			return false, fmt.Errorf("complete round: %w", err)
		}
		if err := s.ledger.Append(res); err != nil {
			return false, fmt.Errorf("record round: %w", err)
		}
		s.logger.Debug("round concluded", "round", number, "house", res.HouseMove, "player", res.OpponentMove, "outcome", string(res.OpponentOutcome()))
		pterm.Fprintln(s.out, resultPanel(res, s.ledger.Score()))
		return false, nil
	}
}

// close verifies the session transcript and optionally prints it.
func (s *session) close(printTranscript bool) error {
	if err := s.ledger.Verify(); err != nil {
		return err
	}
	score := s.ledger.Score()
	s.logger.Info("session closed", "rounds", s.ledger.Rounds(), "wins", score.Wins, "losses", score.Losses, "draws", score.Draws)
	if !printTranscript || s.ledger.Rounds() == 0 {
		return nil
	}
	data, err := json.MarshalIndent(s.ledger, "", "  ")
	if err != nil {
		return err
	}
	pterm.Fprintln(s.out, pterm.DefaultSection.Sprint("Transcript"))
	pterm.Fprintln(s.out, string(data))
	pterm.Fprintln(s.out, pterm.Success.Sprintfln("All %d rounds verified", s.ledger.Rounds()))
	return nil
}

package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"refute/board"
	"refute/engine"
)

var (
	ErrMalformedCommand = errors.New("malformed command")
	ErrMissingPosition  = errors.New("position needs startpos or fen")
	ErrIllegalMove      = errors.New("illegal move")
	ErrOutOfSequence    = errors.New("command out of sequence")
)

var goKeywords = map[string]bool{
	"searchmoves": true,
	"ponder":      true,
	"wtime":       true,
	"btime":       true,
	"winc":        true,
	"binc":        true,
	"movestogo":   true,
	"depth":       true,
	"nodes":       true,
	"mate":        true,
	"movetime":    true,
	"infinite":    true,
}

// parsePosition builds a session from the arguments of a position command.
// Warnings are recoverable oddities in the FEN, such as a missing side to
// move.
func parsePosition(args []string) (*Session, []error, error) {
	if len(args) == 0 {
		return nil, nil, ErrMissingPosition
	}

	var (
		start    board.Board
		warnings []error
		rest     []string
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		start = board.StartPosition()
		rest = args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		if i == 1 {
			return nil, nil, fmt.Errorf("%w: empty fen", ErrMalformedCommand)
		}
		b, warns, err := board.ParseFENWithWarnings(strings.Join(args[1:i], " "))
		if err != nil {
			return nil, nil, err
		}
		start, warnings, rest = b, warns, args[i:]
	default:
		return nil, nil, fmt.Errorf("%w: got %q", ErrMissingPosition, args[0])
	}

	if len(rest) == 0 {
		return NewSession(start, nil), warnings, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return nil, nil, fmt.Errorf("%w: unexpected %q after position", ErrMalformedCommand, rest[0])
	}

	cur := start
	moves := make([]board.Move, 0, len(rest)-1)
	for _, tok := range rest[1:] {
		m, err := board.ParseMove(tok)
		if err != nil {
			return nil, nil, err
		}
		if m.IsNull() {
			moves = append(moves, m)
			continue
		}
		legal, ok := cur.FindLegal(m)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s in %s", ErrIllegalMove, tok, cur.FEN())
		}
		moves = append(moves, legal)
		cur = cur.ApplyMove(legal)
	}
	return NewSession(start, moves), warnings, nil
}

// parseGo reads the search bounds of a go command. Times are milliseconds.
func parseGo(args []string) (engine.Params, []string, error) {
	var (
		p       engine.Params
		unknown []string
	)
	for i := 0; i < len(args); i++ {
		tok := strings.ToLower(args[i])
		switch tok {
		case "ponder":
			p.Ponder = true
		case "infinite":
			p.Infinite = true
		case "searchmoves":
			for i+1 < len(args) && !goKeywords[strings.ToLower(args[i+1])] {
				i++
				m, err := board.ParseMove(args[i])
				if err != nil {
					return engine.Params{}, nil, fmt.Errorf("%w: searchmoves: %v", ErrMalformedCommand, err)
				}
				p.SearchMoves = append(p.SearchMoves, m)
			}
		case "wtime", "btime", "winc", "binc", "movetime":
			n, err := intArg(args, i)
			if err != nil {
				return engine.Params{}, nil, err
			}
			i++
			d := time.Duration(n) * time.Millisecond
			switch tok {
			case "wtime":
				p.WTime = d
			case "btime":
				p.BTime = d
			case "winc":
				p.WInc = d
			case "binc":
				p.BInc = d
			case "movetime":
				if n < 0 {
					return engine.Params{}, nil, fmt.Errorf("%w: negative movetime", ErrMalformedCommand)
				}
				p.MoveTime = d
			}
		case "movestogo", "depth", "mate", "nodes":
			n, err := intArg(args, i)
			if err != nil {
				return engine.Params{}, nil, err
			}
			if n < 0 {
				return engine.Params{}, nil, fmt.Errorf("%w: negative %s", ErrMalformedCommand, tok)
			}
			i++
			switch tok {
			case "movestogo":
				p.MovesToGo = n
			case "depth":
				p.Depth = n
			case "mate":
				p.Mate = n
			case "nodes":
				p.Nodes = uint64(n)
			}
		default:
			unknown = append(unknown, args[i])
		}
	}
	return p, unknown, nil
}

func intArg(args []string, i int) (int, error) {
	if i+1 >= len(args) {
		return 0, fmt.Errorf("%w: %s needs a value", ErrMalformedCommand, args[i])
	}
	n, err := strconv.Atoi(args[i+1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedCommand, args[i], err)
	}
	return n, nil
}

// parseSetOption splits "name <id...> [value <v...>]". Multi-word names and
// values are joined with single spaces.
func parseSetOption(args []string) (name, value string, hasValue bool, err error) {
	if len(args) == 0 || strings.ToLower(args[0]) != "name" {
		return "", "", false, fmt.Errorf("%w: setoption needs a name", ErrMalformedCommand)
	}
	var nameParts, valueParts []string
	inValue := false
	for _, tok := range args[1:] {
		if !inValue && strings.ToLower(tok) == "value" {
			inValue = true
			hasValue = true
			continue
		}
		if inValue {
			valueParts = append(valueParts, tok)
		} else {
			nameParts = append(nameParts, tok)
		}
	}
	if len(nameParts) == 0 {
		return "", "", false, fmt.Errorf("%w: setoption needs a name", ErrMalformedCommand)
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " "), hasValue, nil
}

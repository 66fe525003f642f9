package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"refute/board"
	"refute/engine"
	"refute/logging"
)

type state int

const (
	uninitialized state = iota
	ready
	quitting
)

func (s state) String() string {
	switch s {
	case uninitialized:
		return "uninitialized"
	case ready:
		return "ready"
	default:
		return "quitting"
	}
}

// Config describes the engine as announced during the handshake.
type Config struct {
	Name    string
	Author  string
	Options engine.Options
}

// Dispatcher is the protocol state machine. Handle must be called from one
// goroutine; the search worker only ever writes through Output.
type Dispatcher struct {
	cfg   Config
	out   *Output
	log   *logging.Logger
	ctrl  *engine.Controller
	opts  engine.Options
	state state
	debug bool

	session *Session
	// expectNewGame is set while a ucinewgame would be honoured: at start
	// and after every position change.
	expectNewGame bool
}

func NewDispatcher(cfg Config, w io.Writer, log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	out := NewOutput(w)
	return &Dispatcher{
		cfg:           cfg,
		out:           out,
		log:           log,
		ctrl:          engine.NewController(log.Logger, out),
		opts:          cfg.Options,
		expectNewGame: true,
	}
}

// Run reads commands from r until quit, end of input, or ctx is done. The
// active search is always stopped and joined before Run returns.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			d.Handle("quit")
			return nil
		case line, ok := <-lines:
			if !ok {
				d.Handle("quit")
				return <-errc
			}
			if !d.Handle(line) {
				return nil
			}
		}
	}
}

// Handle executes one command line. It returns false once the engine is
// quitting.
func (d *Dispatcher) Handle(line string) bool {
	if d.state == quitting {
		return false
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return true
	}
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]
	d.log.Debug("command", zap.String("line", line), zap.Stringer("state", d.state))

	if d.state == uninitialized && !allowedBeforeHandshake(cmd) {
		d.fail(cmd, fmt.Errorf("%w: expected uci first", ErrOutOfSequence))
		return true
	}

	switch cmd {
	case "uci":
		d.handshake()
	case "debug":
		d.setDebug(args)
	case "isready":
		d.out.Println("readyok")
	case "setoption":
		d.setOption(args)
	case "register":
		d.register(args)
	case "ucinewgame":
		d.newGame()
	case "position":
		d.position(args)
	case "go":
		d.goSearch(args)
	case "stop":
		d.ctrl.Stop()
	case "ponderhit":
		d.log.Info("ponderhit has no effect; ponder searches run as normal searches")
	case "quit":
		d.quit()
		return false
	case "perft":
		d.perft(args)
	case "d":
		d.display()
	case "eval":
		d.eval()
	default:
		d.log.Warn("unknown command", zap.String("command", cmd))
	}
	return true
}

func allowedBeforeHandshake(cmd string) bool {
	switch cmd {
	case "uci", "debug", "isready", "quit", "perft", "d", "eval":
		return true
	}
	return false
}

func (d *Dispatcher) handshake() {
	d.out.Println("id name " + d.cfg.Name)
	d.out.Println("id author " + d.cfg.Author)
	d.out.Printf("option name Depth type spin default %d min 1 max %d", d.opts.DefaultDepth, d.opts.MaxDepth)
	d.out.Printf("option name PawnAdvancement type check default %t", d.opts.PawnAdvancement)
	d.out.Println("copyprotection ok")
	d.out.Println("registration ok")
	d.out.Println("uciok")
	d.state = ready
}

func (d *Dispatcher) setDebug(args []string) {
	on := d.debug
	if len(args) == 0 {
		on = !on
	} else {
		switch strings.ToLower(args[0]) {
		case "on":
			on = true
		case "off":
			on = false
		default:
			d.fail("debug", fmt.Errorf("%w: want on or off, got %q", ErrMalformedCommand, args[0]))
			return
		}
	}
	d.debug = on
	d.log.SetDebug(on)
}

func (d *Dispatcher) register(args []string) {
	if len(args) == 0 {
		d.fail("register", fmt.Errorf("%w: register needs later, name or code", ErrMalformedCommand))
		return
	}
	d.out.Println("registration checking")
	d.out.Println("registration ok")
}

func (d *Dispatcher) setOption(args []string) {
	name, value, hasValue, err := parseSetOption(args)
	if err != nil {
		d.fail("setoption", err)
		return
	}
	switch strings.ToLower(name) {
	case "depth":
		n, err := strconv.Atoi(value)
		if !hasValue || err != nil || n < 1 || n > d.opts.MaxDepth {
			d.fail("setoption Depth", fmt.Errorf("%w: value %q outside 1..%d", ErrMalformedCommand, value, d.opts.MaxDepth))
			return
		}
		d.opts.DefaultDepth = n
	case "pawnadvancement":
		on, err := strconv.ParseBool(strings.ToLower(value))
		if !hasValue || err != nil {
			d.fail("setoption PawnAdvancement", fmt.Errorf("%w: value %q is not a boolean", ErrMalformedCommand, value))
			return
		}
		d.opts.PawnAdvancement = on
	default:
		d.log.Info("unknown option ignored", zap.String("name", name), zap.String("value", value))
		return
	}
	d.log.Debug("option set", zap.String("name", name), zap.String("value", value))
}

func (d *Dispatcher) newGame() {
	if !d.expectNewGame {
		d.fail("ucinewgame", fmt.Errorf("%w: no position since the last ucinewgame", ErrOutOfSequence))
		return
	}
	d.resetGame()
	d.expectNewGame = false
}

func (d *Dispatcher) resetGame() {
	d.ctrl.Stop()
	d.session = nil
}

func (d *Dispatcher) position(args []string) {
	sess, warnings, err := parsePosition(args)
	if err != nil {
		d.fail("position", err)
		return
	}
	for _, w := range warnings {
		d.log.Error("position", zap.Error(w))
	}
	if d.expectNewGame {
		d.log.Debug("position without ucinewgame, resetting session")
		d.resetGame()
	}
	d.session = sess
	d.expectNewGame = true
}

func (d *Dispatcher) goSearch(args []string) {
	p, unknown, err := parseGo(args)
	if err != nil {
		d.fail("go", err)
		return
	}
	if len(unknown) > 0 {
		d.log.Warn("unknown go arguments ignored", zap.Strings("args", unknown))
	}
	if p.WTime != 0 || p.BTime != 0 || p.MovesToGo != 0 {
		d.log.Debug("clock parameters are not enforced",
			zap.Duration("wtime", p.WTime), zap.Duration("btime", p.BTime),
			zap.Duration("winc", p.WInc), zap.Duration("binc", p.BInc),
			zap.Int("movestogo", p.MovesToGo))
	}

	d.ctrl.Stop()
	if d.session == nil {
		d.session = NewSession(board.StartPosition(), nil)
	}
	d.ctrl.Start(d.session.Board(), p, d.opts)
}

// fail logs a rejected command. In debug mode the GUI sees it too.
func (d *Dispatcher) fail(cmd string, err error) {
	d.log.Error("command rejected", zap.String("command", cmd), zap.Error(err))
	if d.debug {
		d.out.InfoString("%s: %v", cmd, err)
	}
}

func (d *Dispatcher) quit() {
	d.state = quitting
	d.ctrl.Stop()
}

// current is the board diagnostics work on: the session board, or the
// start position when no session exists.
func (d *Dispatcher) current() board.Board {
	if d.session == nil {
		return board.StartPosition()
	}
	return d.session.Board()
}

// perft counts leaf nodes: "perft <depth> [fen <fields...>|<fields...>]".
// Without a position it uses the current board.
func (d *Dispatcher) perft(args []string) {
	if len(args) == 0 {
		d.fail("perft", fmt.Errorf("%w: perft needs a depth", ErrMalformedCommand))
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		d.fail("perft", fmt.Errorf("%w: bad depth %q", ErrMalformedCommand, args[0]))
		return
	}
	b := d.current()
	if rest := args[1:]; len(rest) > 0 {
		if strings.ToLower(rest[0]) == "fen" {
			rest = rest[1:]
		}
		parsed, err := board.ParseFEN(strings.Join(rest, " "))
		if err != nil {
			d.fail("perft", err)
			return
		}
		b = parsed
	}
	d.out.InfoString("nodes %d", board.Perft(b, depth))
}

func (d *Dispatcher) display() {
	b := d.current()
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		d.out.InfoString("%s", line)
	}
	d.out.InfoString("fen %s", b.FEN())
}

func (d *Dispatcher) eval() {
	b := d.current()
	e := engine.Evaluator{PawnAdvancement: d.opts.PawnAdvancement}
	d.out.InfoString("eval cp %d", e.Evaluate(&b))
}

package uci

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"refute/engine"
)

// Output serializes protocol lines written from the command goroutine and
// the search worker. It implements engine.Reporter.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Println(a ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.w, a...)
}

func (o *Output) Printf(format string, a ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, format, a...)
	if !strings.HasSuffix(format, "\n") {
		fmt.Fprintln(o.w)
	}
}

// InfoString sends free text to the GUI.
func (o *Output) InfoString(format string, a ...any) {
	o.Printf("info string "+format, a...)
}

func (o *Output) Info(info engine.Info) {
	o.Println("info " + info.String())
}

func (o *Output) BestMove(res engine.Result) {
	if res.HasPonder() {
		o.Printf("bestmove %s ponder %s", res.Best, res.Ponder)
		return
	}
	o.Printf("bestmove %s", res.Best)
}

package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"refute/config"
	"refute/uci"
)

func TestUCIConfigFromDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	u := uciConfig(cfg)
	if u.Name != cfg.EngineName || u.Options.DefaultDepth != cfg.DefaultDepth || u.Options.MaxDepth != cfg.MaxDepth {
		t.Fatalf("uciConfig dropped fields: %+v", u)
	}
}

func BenchmarkMain(b *testing.B) {
	cfg, err := config.Load("")
	if err != nil {
		b.Fatalf("config.Load: %v", err)
	}
	script := "uci\nucinewgame\nposition startpos moves e2e4 e7e5\ngo depth 3\nisready\n"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := uci.NewDispatcher(uciConfig(cfg), io.Discard, nil)
		if err := d.Run(context.Background(), strings.NewReader(script)); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
}

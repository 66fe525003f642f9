package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"refute/board"
	"refute/engine"
)

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	noPawns := flag.Bool("nopawnadvancement", false, "disable the pawn advancement term")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	b, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	opts := engine.DefaultOptions()
	opts.MaxDepth = engine.Max(opts.MaxDepth, *depthFlag)
	opts.PawnAdvancement = !*noPawns
	params := engine.Params{Depth: *depthFlag}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeatFlag)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		iterStart := time.Now()
		res, ok := engine.Search(context.Background(), b, params, opts, func(info engine.Info) {
			fmt.Println("info", info)
		})
		iterElapsed := time.Since(iterStart)
		if !ok {
			fmt.Printf("iteration %d: no legal move  time=%v\n", i+1, iterElapsed)
			continue
		}
		fmt.Printf("iteration %d: bestmove %v  nodes=%d  time=%v\n", i+1, res.Best, res.Nodes, iterElapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}

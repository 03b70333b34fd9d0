package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"chesscore/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartingPosition, "position to count from, as FEN")
	depth := flag.Int("depth", 0, "search depth in plies (required)")
	divide := flag.Bool("divide", false, "break the total down per root move")
	repeat := flag.Int("repeat", 1, "run the count this many times and aggregate")
	label := flag.String("label", "", "tag to prefix the result line with")
	cpuProf := flag.String("cpuprofile", "", "write a CPU profile to this file")
	memProf := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "perft: -depth must be at least 1")
		os.Exit(2)
	}

	pos, err := rules.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: bad -fen: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := rules.PerftDivide(pos, *depth)
		type kv struct {
			m rules.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m < arr[j].m })
		for _, x := range arr {
			fmt.Printf("%-6s %d\n", x.m, x.n)
		}
		fmt.Printf("total  %d (%d root moves)\n", sum, len(arr))
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: -cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "perft: cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += rules.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	if *label != "" {
		fmt.Printf("%s: ", *label)
	}
	fmt.Printf("depth=%d nodes=%d time=%s nps=%.0f\n", *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: -memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "perft: heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

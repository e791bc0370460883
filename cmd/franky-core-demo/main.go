//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// franky-core-demo is a small non-interactive driver over the core: it
// does not speak UCI (the core deliberately stops short of that
// boundary), it only exercises perft and a timed/depth-limited search
// from the standard starting position so the engine package can be
// smoke-tested without a full protocol layer.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/engine"
	"github.com/frankkopp/franky-core/internal/movegen"
	"github.com/frankkopp/franky-core/internal/search"
	"github.com/frankkopp/franky-core/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth from the starting position and exit")
	searchDepth := flag.Int("depth", 0, "search depth limit")
	searchTimeMs := flag.Int("movetime", 0, "search time budget in milliseconds")
	ttSizeMB := flag.Int("hash", 64, "transposition table size in megabytes")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling for the run, written to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *perftDepth > 0 {
		runPerft(*perftDepth)
		return
	}

	runSearch(*searchDepth, *searchTimeMs, *ttSizeMB)
}

func runPerft(depth int) {
	pos := engine.NewGame().Raw()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(pos, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d nodes in %s (%d nps)\n", d, nodes, elapsed, util.Nps(nodes, elapsed))
	}
}

func runSearch(depth, moveTimeMs, ttSizeMB int) {
	limits := search.Limits{MaxDepth: depth}
	if moveTimeMs > 0 {
		limits.MaxTime = time.Duration(moveTimeMs) * time.Millisecond
	}
	if !limits.IsConfigured() {
		limits.MaxDepth = 6
	}

	pos := engine.NewGame()
	se := engine.NewSearchEngine(ttSizeMB)

	ctx := context.Background()
	result, err := se.Search(ctx, pos, limits)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}

	out.Printf("bestmove %s score %d depth %d nodes %d (%d quiescence, %d pruned) in %s (%d nps)\n",
		result.BestMove, result.Score, result.DepthReached,
		result.Statistics.Nodes, result.Statistics.QuiescenceNodes, result.Statistics.NodesPruned,
		result.Statistics.Elapsed, util.Nps(result.Statistics.Nodes, result.Statistics.Elapsed))
	out.Printf("pv:")
	for _, m := range result.PrincipalVariation {
		out.Printf(" %s", m)
	}
	out.Println()
	out.Printf("running on %d CPUs, GOMAXPROCS=%d\n", runtime.NumCPU(), runtime.GOMAXPROCS(0))
}

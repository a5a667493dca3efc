package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/ping-pong/internal/game"
)

// stalemateRally is the rally length at which an unfinished run counts as
// a stalemate rather than a slow match.
const stalemateRally = 40

type runStats struct {
	runIndex int
	seed     int64

	ticksPlayed int
	finished    bool
	winner      game.Side

	firstHitTick   int
	firstWallTick  int
	firstPointTick int

	match         game.MatchStats
	windowSummary *game.WindowReport
	grades        []game.PaddleGrade
	logTail       string
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var threshold int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 36000, "tick cap per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&threshold, "threshold", game.DefaultThreshold, "points needed to win (3, 5 or 7)")
	flag.BoolVar(&verbose, "verbose", false, "print the last second of events for each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	if !game.ValidThreshold(threshold) {
		fmt.Printf("error: unsupported -threshold %d (supported: 3, 5, 7)\n", threshold)
		os.Exit(2)
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("mode=ai-vs-ai runs=%d ticks=%d first_to=%d seed_base=%d seed_step=%d\n\n", runs, ticks, threshold, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, ticks, threshold, verbose)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runMatch plays both paddles with the tracking policy until the match ends
// or the tick cap is reached.
func runMatch(runIndex int, seed int64, ticks, threshold int, verbose bool) runStats {
	rep := game.NewMatchReporter(0, 0)
	sim := game.NewSimulation(
		game.WithSeed(seed),
		game.WithReporter(rep),
		game.WithSimLog(game.NewSimLog(verbose)),
		game.WithThreshold(threshold),
	)
	sim.RunTicks(ticks)

	entries := sim.SimLog.Entries()
	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		ticksPlayed:    sim.CurrentTick(),
		finished:       sim.GameOver(),
		winner:         sim.Winner(),
		firstHitTick:   firstTick(entries, "ball", "paddle_hit", ""),
		firstWallTick:  firstTick(entries, "ball", "wall", ""),
		firstPointTick: firstTick(entries, "score", "point", ""),
		match:          game.DetermineMatchStats(sim.SimLog),
		windowSummary:  rep.WindowSummary(),
	}
	rs.grades = game.GradePaddles(rs.match, rep.History())
	if verbose {
		from := sim.CurrentTick() - game.TargetTPS + 1
		rs.logTail = sim.SimLog.FormatRange(from, sim.CurrentTick())
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	status := "finished"
	if !rs.finished {
		status = "tick_cap"
	}
	fmt.Printf("result: %s winner=%s ticks=%d\n", status, rs.winner, rs.ticksPlayed)
	fmt.Printf("phase_markers: first_hit=%d first_wall=%d first_point=%d\n",
		rs.firstHitTick, rs.firstWallTick, rs.firstPointTick)
	fmt.Print(game.FormatMatchStats(rs.match))
	if rs.windowSummary != nil {
		fmt.Printf("window_samples=%d window_tick_range=%d..%d\n",
			rs.windowSummary.SampleCount, rs.windowSummary.FromTick, rs.windowSummary.ToTick)
		fmt.Printf("window_avg: rally=%.1f abs_vy=%.2f ai_lag=%.1f player_lag=%.1f points=%d\n",
			rs.windowSummary.AvgRallyHits,
			rs.windowSummary.AvgAbsVY,
			rs.windowSummary.AvgAILag,
			rs.windowSummary.AvgPlayerLag,
			rs.windowSummary.PointsScored,
		)
	}
	if stalled, reason := detectStalemate(rs); stalled {
		fmt.Printf("stalemate: %s\n", reason)
	}
	fmt.Print(game.FormatGrades(rs.grades))
	if rs.logTail != "" {
		fmt.Print(rs.logTail)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	playerWins, aiWins, unfinished := winCounts(all)

	totalTicks := 0
	totalHits := 0
	totalWalls := 0
	totalPoints := 0
	longest := 0
	peakVY := 0.0
	pointTicks := make([]int, 0, len(all))
	for _, rs := range all {
		totalTicks += rs.ticksPlayed
		totalHits += rs.match.PlayerHits + rs.match.AIHits
		totalWalls += rs.match.WallBounces
		totalPoints += rs.match.PlayerPoints + rs.match.AIPoints
		if rs.match.LongestRally > longest {
			longest = rs.match.LongestRally
		}
		if rs.match.PeakAbsVY > peakVY {
			peakVY = rs.match.PeakAbsVY
		}
		if rs.firstPointTick >= 0 {
			pointTicks = append(pointTicks, rs.firstPointTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d player_wins=%d ai_wins=%d unfinished=%d\n", len(all), playerWins, aiWins, unfinished)
	fmt.Printf("avg_per_run: ticks=%.1f paddle_hits=%.1f wall_bounces=%.1f points=%.1f\n",
		avg(totalTicks, len(all)), avg(totalHits, len(all)), avg(totalWalls, len(all)), avg(totalPoints, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_point=%s\n", avgTickString(pointTicks))
	fmt.Printf("extremes: longest_rally=%d peak_vy=%.2f\n", longest, peakVY)

	fmt.Println("\n=== Aggregate Paddle Performance ===")
	for _, side := range []game.Side{game.SidePlayer, game.SideAI} {
		score := avgGradeScore(all, side)
		fmt.Printf("  %-6s  %s (avg=%.1f)\n", side, game.PerfLetterGrade(score), score)
	}
}

func avgGradeScore(all []runStats, side game.Side) float64 {
	sum := 0.0
	n := 0
	for _, rs := range all {
		for _, g := range rs.grades {
			if g.Side == side {
				sum += g.Score
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func winCounts(all []runStats) (player, ai, unfinished int) {
	for _, rs := range all {
		switch {
		case !rs.finished:
			unfinished++
		case rs.winner == game.SidePlayer:
			player++
		case rs.winner == game.SideAI:
			ai++
		}
	}
	return player, ai, unfinished
}

// detectStalemate flags runs that hit the tick cap inside a rally neither
// tracker can lose.
func detectStalemate(rs runStats) (bool, string) {
	if rs.finished {
		return false, "finished"
	}
	reasons := []string{"tick_cap_reached"}
	if rs.windowSummary != nil && rs.windowSummary.PeakRallyHits >= stalemateRally {
		reasons = append(reasons, fmt.Sprintf("endless_rally=%d", rs.windowSummary.PeakRallyHits))
	}
	if rs.windowSummary != nil && rs.windowSummary.PointsScored == 0 {
		reasons = append(reasons, "no_points_in_window")
	}
	if len(reasons) == 1 {
		return false, reasons[0]
	}
	return true, strings.Join(reasons, ",")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

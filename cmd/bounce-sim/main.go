// bounce-sim replays a recorded hand trace against the engine on a simulated clock
// and prints the match summary. No terminal, audio or real time is involved.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/palm-bounce/constants"
	"github.com/lixenwraith/palm-bounce/engine"
	"github.com/lixenwraith/palm-bounce/status"
	"github.com/lixenwraith/palm-bounce/tracking"
)

const (
	// defaultMaxFrames covers the countdown plus two minutes of play
	defaultMaxFrames = 180 + 120*60

	// detectEvery approximates the tracker cadence in frames
	detectEvery = 2
)

// simEpoch is the fixed start of simulated time
var simEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// Result is the outcome of one simulated match
type Result struct {
	Frames     int64
	Over       bool
	Elapsed    int
	TouchScore int
	Summary    engine.Summary
	Metrics    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bounce-sim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tracePath := fs.String("trace", "", "YAML hand trace to replay (required)")
	loop := fs.Bool("loop", false, "Restart the trace when it ends")
	maxFrames := fs.Int("max-frames", defaultMaxFrames, "Stop after this many frames")
	debug := fs.Bool("debug", false, "Log to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.SetOutput(io.Discard)
	if *debug {
		log.SetOutput(stderr)
	}

	if *tracePath == "" {
		fmt.Fprintln(stderr, "bounce-sim: -trace is required")
		return 2
	}

	tr, err := tracking.LoadTrace(*tracePath)
	if err != nil {
		fmt.Fprintf(stderr, "bounce-sim: %v\n", err)
		return 1
	}

	res, err := simulate(tr, *loop, *maxFrames)
	if err != nil {
		fmt.Fprintf(stderr, "bounce-sim: %v\n", err)
		return 1
	}
	printResult(stdout, res)
	return 0
}

// simulate runs one match frame by frame until game over or maxFrames
// Detection is sampled every detectEvery frames; errored trace frames leave the last hands in place
func simulate(tr *tracking.Trace, loop bool, maxFrames int) (Result, error) {
	ctx := context.Background()
	reg := status.NewRegistry()

	detector := tracking.NewTraceDetectorFrom(tr, loop)
	if err := detector.Init(ctx); err != nil {
		return Result{}, fmt.Errorf("init trace: %w", err)
	}
	defer detector.Close()

	eng := engine.NewEngine(reg)
	clock := engine.NewMockTimeProvider(simEpoch)
	if err := eng.Start(); err != nil {
		return Result{}, fmt.Errorf("start match: %w", err)
	}

	snapshots := reg.Counter(constants.MetricSnapshots)
	detectErrs := reg.Counter(constants.MetricDetectErrs)

	for frame := 0; frame < maxFrames; frame++ {
		if frame%detectEvery == 0 {
			points, err := detector.Detect(ctx)
			switch {
			case err == nil:
				eng.Deliver(points)
				snapshots.Add(1)
			case errors.Is(err, tracking.ErrDetection):
				detectErrs.Add(1)
			default:
				return Result{}, err
			}
		}

		if eng.Tick(clock.Advance(constants.FrameInterval)) == engine.PhaseOver {
			break
		}
	}

	snap := eng.Snapshot()
	log.Printf("[sim] finished after %d frames in phase %s", snap.Frame, snap.Phase)
	return Result{
		Frames:     snap.Frame,
		Over:       snap.Over,
		Elapsed:    snap.ElapsedScore,
		TouchScore: snap.TouchScore,
		Summary:    snap.Summary,
		Metrics:    reg.Line(),
	}, nil
}

func printResult(w io.Writer, res Result) {
	fmt.Fprintf(w, "frames: %d\n", res.Frames)
	if res.Over {
		fmt.Fprintf(w, "%s %s\n", res.Summary.Emoji, res.Summary.Message)
		fmt.Fprintln(w, res.Summary.Survived())
	} else {
		fmt.Fprintf(w, "still playing after %d seconds\n", res.Elapsed)
	}
	fmt.Fprintf(w, "touches: %d\n", res.TouchScore)
	fmt.Fprintf(w, "metrics: %s\n", res.Metrics)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/palm-bounce/engine"
	"github.com/lixenwraith/palm-bounce/tracking"
)

// handAt returns a hand whose palm center sits at x, y in camera space
func handAt(x, y float64) tracking.TraceHand {
	kps := make([]tracking.Keypoint, 21)
	for i := range kps {
		kps[i] = tracking.Keypoint{X: x, Y: y}
	}
	return tracking.TraceHand{Keypoints: kps}
}

func TestSimulateNoHandsFalls(t *testing.T) {
	tr := &tracking.Trace{FrameWidth: 640, Frames: []tracking.TraceFrame{{}}}

	res, err := simulate(tr, true, defaultMaxFrames)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if !res.Over {
		t.Fatalf("Expected game over, got %+v", res)
	}
	if res.TouchScore != 0 {
		t.Errorf("Expected 0 touches, got %d", res.TouchScore)
	}
	if res.Summary.Tier != engine.TierKeepTrying {
		t.Errorf("Expected keep-trying tier, got %v", res.Summary.Tier)
	}
	if res.Frames < 180 || res.Frames > 400 {
		t.Errorf("Expected fall shortly after the countdown, got %d frames", res.Frames)
	}
}

func TestSimulateHeldHandKeepsBallUp(t *testing.T) {
	// Mirrored x of 320 on a 640 frame stays under the spawn point
	tr := &tracking.Trace{FrameWidth: 640, Frames: []tracking.TraceFrame{{Hands: []tracking.TraceHand{handAt(320, 400)}}}}

	maxFrames := 180 + 60*60
	res, err := simulate(tr, true, maxFrames)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if res.Over {
		t.Fatalf("Expected ball to stay up, got game over after %d frames", res.Frames)
	}
	if res.Frames != int64(maxFrames) {
		t.Errorf("Expected %d frames, got %d", maxFrames, res.Frames)
	}
	if res.TouchScore < 10 {
		t.Errorf("Expected repeated touches, got %d", res.TouchScore)
	}
	if res.Elapsed < 50 {
		t.Errorf("Expected close to a minute survived, got %d", res.Elapsed)
	}
}

func TestSimulateCountsDetectionErrors(t *testing.T) {
	tr := &tracking.Trace{FrameWidth: 640, Frames: []tracking.TraceFrame{{Error: true}}}

	res, err := simulate(tr, true, 10)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if !strings.Contains(res.Metrics, "tracking.errors=5") {
		t.Errorf("Expected 5 detection errors in metrics, got %q", res.Metrics)
	}
}

func TestRunMissingTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-trace", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "read trace") {
		t.Errorf("Expected read error, got %q", stderr.String())
	}
}

func TestRunRequiresTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}

func TestRunPrintsSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("frame_width: 640\nframes:\n  - hands: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write trace: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-trace", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Game Over!", "You survived 1 seconds", "touches: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got %q", want, out)
		}
	}
}

package debug

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"learngl/internal/logger"
)

// updateInterval: only sample FPS/Mem every N frames to keep the frame path allocation free.
const updateInterval = 120

// Stats counts presented frames and periodically logs the frame rate and heap size. It is off
// unless ShowFPS is set.
type Stats struct {
	ShowFPS  bool
	Interval int
	log      *slog.Logger
	now      func() time.Time

	frameCount   uint64
	windowStart  time.Time
	windowFrames int
	lastFPS      float64
	lastMemStats runtime.MemStats
	overlay      []string
}

// New returns a Stats that logs through log (nil discards).
func New(log *slog.Logger, showFPS bool) *Stats {
	if log == nil {
		log = logger.Discard()
	}
	return &Stats{ShowFPS: showFPS, Interval: updateInterval, log: log, now: time.Now}
}

// Frame records one presented frame. Every Interval frames it logs FPS and heap MiB.
func (s *Stats) Frame() {
	s.frameCount++
	if !s.ShowFPS {
		return
	}
	t := s.now()
	if s.windowStart.IsZero() {
		s.windowStart = t
		s.refresh()
		return
	}
	s.windowFrames++
	interval := s.Interval
	if interval <= 0 {
		interval = updateInterval
	}
	if s.windowFrames < interval {
		return
	}
	if elapsed := t.Sub(s.windowStart); elapsed > 0 {
		s.lastFPS = float64(s.windowFrames) / elapsed.Seconds()
	}
	s.refresh()
	s.log.Info("frame stats",
		"fps", s.lastFPS,
		"heap_mib", heapMiB(&s.lastMemStats),
		"frames", s.frameCount,
	)
	s.windowStart = t
	s.windowFrames = 0
}

// refresh samples the heap and rebuilds the overlay text.
func (s *Stats) refresh() {
	runtime.ReadMemStats(&s.lastMemStats)
	s.overlay = append(s.overlay[:0],
		fmt.Sprintf("FPS: %.0f", s.lastFPS),
		fmt.Sprintf("Mem: %.2f MiB", heapMiB(&s.lastMemStats)),
	)
}

func heapMiB(m *runtime.MemStats) float64 {
	return float64(m.Alloc) / (1024 * 1024)
}

// Overlay returns the text lines a host can draw on screen: frame rate, then
// heap size. It is empty while ShowFPS is off and is only rebuilt every
// Interval frames, so callers may draw it each frame.
func (s *Stats) Overlay() []string { return s.overlay }

// Frames returns the total number of frames recorded.
func (s *Stats) Frames() uint64 { return s.frameCount }

// FPS returns the frame rate measured over the last full interval, or 0 before one completes.
func (s *Stats) FPS() float64 { return s.lastFPS }

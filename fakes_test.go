package trafficlight

import (
	"context"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
)

type fakeLamp struct {
	mu     sync.Mutex
	colors []Color
}

func (l *fakeLamp) SetColor(c Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colors = append(l.colors, c)
}

func (l *fakeLamp) last() (Color, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.colors) == 0 {
		return ColorOff, false
	}
	return l.colors[len(l.colors)-1], true
}

type fakeGlyphs struct {
	mu     sync.Mutex
	digits []int
	cues   []string
}

func (g *fakeGlyphs) RenderDigit(v int, _ Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.digits = append(g.digits, v)
}

func (g *fakeGlyphs) RenderText(cue string, _ Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cues = append(g.cues, cue)
}

func (g *fakeGlyphs) lastCue() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.cues) == 0 {
		return "", false
	}
	return g.cues[len(g.cues)-1], true
}

type tone struct {
	d     time.Duration
	pitch physic.Frequency
}

type fakeTone struct {
	mu    sync.Mutex
	tones []tone
}

func (f *fakeTone) Emit(_ context.Context, d time.Duration, pitch physic.Frequency) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tones = append(f.tones, tone{d, pitch})
}

func (f *fakeTone) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tones)
}

// chanEdges is an EdgeSource fed by a test.
type chanEdges chan struct{}

func (c chanEdges) Watch(ctx context.Context, edges chan<- struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
		}
		select {
		case edges <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

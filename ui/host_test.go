package ui

import (
	"errors"
	"testing"
	"time"

	"hello-ebiten/core"
	"hello-ebiten/core/coretest"
	"hello-ebiten/ecs/system"
)

type fakeProgram struct {
	updates int
	draws   int
	delta   time.Duration
	drawErr error
	onDraw  func(core.Canvas)
}

func (p *fakeProgram) Update(clock core.Clock) error {
	p.updates++
	p.delta = clock.Delta()
	return nil
}

func (p *fakeProgram) Draw(canvas core.Canvas) error {
	p.draws++
	if p.onDraw != nil {
		p.onDraw(canvas)
	}
	return p.drawErr
}

func TestHostRunsUpdateAndDraw(t *testing.T) {
	p := &fakeProgram{}
	h := NewHost(p, HostOptions{Width: 640, Height: 480})

	for i := 0; i < 3; i++ {
		if err := h.Update(); err != nil {
			t.Fatal(err)
		}
		h.render(coretest.NewRecorder(640, 480))
	}
	if p.updates != 3 || p.draws != 3 {
		t.Errorf("updates=%d draws=%d, expected 3/3", p.updates, p.draws)
	}
	if h.cycle.Frames() != 3 || h.cycle.State() != system.TickStateIdle {
		t.Errorf("cycle frames=%d state=%s", h.cycle.Frames(), h.cycle.State())
	}
	if w, hh := h.Layout(100, 100); w != 640 || hh != 480 {
		t.Errorf("Layout = %dx%d", w, hh)
	}
}

func TestHostLatchesDrawError(t *testing.T) {
	boom := errors.New("lost device")
	p := &fakeProgram{drawErr: boom}
	h := NewHost(p, HostOptions{Width: 640, Height: 480})

	h.render(coretest.NewRecorder(640, 480))
	if !errors.Is(h.Err(), boom) {
		t.Fatalf("Err() = %v, expected %v", h.Err(), boom)
	}
	if err := h.Update(); !errors.Is(err, boom) {
		t.Fatalf("Update() = %v, expected %v", err, boom)
	}
	if p.updates != 0 {
		t.Error("program updated after a draw error")
	}

	h.render(coretest.NewRecorder(640, 480))
	if p.draws != 1 {
		t.Errorf("draws = %d, expected no further draws", p.draws)
	}
	if h.cycle.State() != system.TickStateIdle {
		t.Errorf("cycle left in %s", h.cycle.State())
	}
}

func TestHostRejectsReentrantDraw(t *testing.T) {
	p := &fakeProgram{}
	h := NewHost(p, HostOptions{})
	var inner error
	p.onDraw = func(c core.Canvas) {
		if p.draws == 1 {
			inner = h.frame(c)
		}
	}

	h.render(coretest.NewRecorder(10, 10))
	if inner == nil {
		t.Fatal("expected nested frame to be rejected")
	}
	if h.Err() != nil {
		t.Errorf("outer frame should succeed, got %v", h.Err())
	}
}

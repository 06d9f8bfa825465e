package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/spotlight"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []spotlight.Event
	SequenceEventType.Subscribe(world, func(w donburi.World, e spotlight.Event) {
		received = append(received, e)
	})

	store.EmitEvent(spotlight.Event{Type: spotlight.EventSequenceStarted, Index: -1})
	store.EmitEvent(spotlight.Event{Type: spotlight.EventTargetClosed, Index: 2})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	SequenceEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != spotlight.EventSequenceStarted || received[0].Index != -1 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != spotlight.EventTargetClosed || received[1].Index != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SequenceEventType.Subscribe(world, func(w donburi.World, e spotlight.Event) {
		count1++
	})
	SequenceEventType.Subscribe(world, func(w donburi.World, e spotlight.Event) {
		count2++
	})

	store.EmitEvent(spotlight.Event{Type: spotlight.EventSequenceEnded, Index: -1})
	SequenceEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d count2=%d, want 1 each", count1, count2)
	}
}

func TestDonburiStore_FullSequence(t *testing.T) {
	world := donburi.NewWorld()
	win := spotlight.NewWindow(800, 600)

	var targets []*spotlight.Target
	for _, p := range []spotlight.Vec2{{X: 100, Y: 100}, {X: 500, Y: 400}} {
		tg, err := spotlight.NewTarget(spotlight.TargetConfig{Host: win, Point: p, Radius: 40}, nil)
		if err != nil {
			t.Fatal(err)
		}
		targets = append(targets, tg)
	}

	s := spotlight.New(spotlight.Config{
		Host:        win,
		Targets:     targets,
		Duration:    100 * time.Millisecond,
		MaskFadeIn:  100 * time.Millisecond,
		MaskFadeOut: 100 * time.Millisecond,
	})
	s.SetEventStore(NewDonburiStore(world))

	var got []spotlight.Event
	SequenceEventType.Subscribe(world, func(w donburi.World, e spotlight.Event) {
		got = append(got, e)
	})

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	for range targets {
		stepUntil(t, win, func() bool { return s.State() == spotlight.StateTargetShown })
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
		stepUntil(t, win, func() bool { return s.State() != spotlight.StateTargetConcealing })
	}
	stepUntil(t, win, func() bool { return s.State() == spotlight.StateIdle })

	SequenceEventType.ProcessEvents(world)

	want := []spotlight.EventType{
		spotlight.EventSequenceStarted,
		spotlight.EventTargetShown,
		spotlight.EventTargetClosed,
		spotlight.EventTargetShown,
		spotlight.EventTargetClosed,
		spotlight.EventSequenceEnded,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(got), len(want), got)
	}
	for i, e := range got {
		if e.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, e.Type, want[i])
		}
	}
	if got[2].Target != targets[0] || got[4].Target != targets[1] {
		t.Error("closed events carry the wrong targets")
	}
	if got[4].Index != 1 {
		t.Errorf("second close index = %d, want 1", got[4].Index)
	}
}

func stepUntil(t *testing.T, w *spotlight.Window, cond func() bool) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if cond() {
			return
		}
		w.Advance(1.0 / 60)
	}
	t.Fatal("condition not reached after 200 frames")
}

package clock

import (
	"testing"
	"time"
)

func TestEveryFiresOncePerPeriod(t *testing.T) {
	s := New()
	count := 0
	s.Every(40*time.Millisecond, func() { count++ })

	frame := time.Second / 60
	for s.Now() < time.Second {
		s.Advance(frame)
	}

	if count != 25 {
		t.Errorf("40ms task fired %d times in one second, expected 25", count)
	}
}

func TestEveryCatchesUpOnLongFrames(t *testing.T) {
	s := New()
	count := 0
	s.Every(20*time.Millisecond, func() { count++ })

	fired := s.Advance(100 * time.Millisecond)
	if fired != 5 || count != 5 {
		t.Errorf("Advance(100ms) fired %d (count %d), expected 5", fired, count)
	}
}

func TestAfterFiresExactlyOnce(t *testing.T) {
	s := New()
	count := 0
	s.After(3*time.Second, func() { count++ })

	s.Advance(2999 * time.Millisecond)
	if count != 0 {
		t.Fatal("one-shot fired before its delay")
	}
	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("one-shot fired %d times at its deadline, expected 1", count)
	}
	s.Advance(10 * time.Second)
	if count != 1 {
		t.Errorf("one-shot fired again, count=%d", count)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after one-shot fired, expected 0", s.Pending())
	}
}

func TestOrderingByDueTimeThenRegistration(t *testing.T) {
	s := New()
	var order []string
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
}

func TestNowDuringCallback(t *testing.T) {
	s := New()
	var seen time.Duration
	s.After(30*time.Millisecond, func() { seen = s.Now() })

	s.Advance(50 * time.Millisecond)

	if seen != 30*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 30ms", seen)
	}
	if s.Now() != 50*time.Millisecond {
		t.Errorf("Now() after Advance = %v, expected 50ms", s.Now())
	}
}

func TestCancel(t *testing.T) {
	s := New()
	count := 0
	id := s.Every(10*time.Millisecond, func() { count++ })

	s.Advance(25 * time.Millisecond)
	if !s.Cancel(id) {
		t.Fatal("Cancel should report a pending task")
	}
	s.Advance(time.Second)

	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report false")
	}
}

func TestCallbackMayCancelItself(t *testing.T) {
	s := New()
	count := 0
	var id TaskID
	id = s.Every(10*time.Millisecond, func() {
		count++
		if count == 3 {
			s.Cancel(id)
		}
	})

	s.Advance(time.Second)

	if count != 3 {
		t.Errorf("count = %d, expected 3", count)
	}
}

func TestCallbackMayScheduleWork(t *testing.T) {
	s := New()
	fired := false
	s.After(10*time.Millisecond, func() {
		s.After(10*time.Millisecond, func() { fired = true })
	})

	s.Advance(20 * time.Millisecond)

	if !fired {
		t.Error("task scheduled from a callback should fire within the same Advance")
	}
}

func TestReset(t *testing.T) {
	s := New()
	count := 0
	s.Every(10*time.Millisecond, func() { count++ })
	s.Advance(15 * time.Millisecond)

	s.Reset()

	if s.Now() != 0 || s.Pending() != 0 {
		t.Errorf("after Reset: Now=%v Pending=%d", s.Now(), s.Pending())
	}
	s.Advance(time.Second)
	if count != 1 {
		t.Errorf("task survived Reset, count=%d", count)
	}
}

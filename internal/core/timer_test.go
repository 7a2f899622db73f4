package core

import "testing"

func TestTimerCountsDown(t *testing.T) {
	tm := NewTimer(3)
	if tm.Active() {
		t.Fatal("new timer should be stopped")
	}

	tm.Start()
	fired := 0
	for i := 0; i < 5; i++ {
		if tm.Tick() {
			fired++
			if i != 2 {
				t.Errorf("timer fired on tick %d, expected 2", i)
			}
		}
	}
	if fired != 1 {
		t.Errorf("timer fired %d times, expected 1", fired)
	}
	if !tm.Done() || tm.Remaining() != 0 {
		t.Errorf("timer should be done, remaining=%d", tm.Remaining())
	}
}

func TestTimerElapsed(t *testing.T) {
	tm := NewTimer(10)
	tm.Start()
	tm.Tick()
	tm.Tick()
	if tm.Elapsed() != 2 {
		t.Errorf("Elapsed() = %d, expected 2", tm.Elapsed())
	}
}

func TestTimerStartWithAndStop(t *testing.T) {
	tm := NewTimer(10)
	tm.StartWith(4)
	if tm.Remaining() != 4 {
		t.Errorf("Remaining() = %d, expected 4", tm.Remaining())
	}
	tm.Stop()
	if tm.Active() {
		t.Error("stopped timer should not be active")
	}
	if tm.Tick() {
		t.Error("stopped timer should not fire")
	}

	tm.StartWith(-3)
	if tm.Remaining() != 0 {
		t.Errorf("negative start should clamp to 0, got %d", tm.Remaining())
	}
}

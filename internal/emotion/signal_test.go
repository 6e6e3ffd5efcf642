package emotion

import (
	"sync"
	"testing"
)

func TestSignalDefault(t *testing.T) {
	s := NewSignal()
	if got := s.Load(); got != (Flags{}) {
		t.Errorf("Load() before publish = %+v, expected all false", got)
	}

	var zero Signal
	if got := zero.Load(); got != (Flags{}) {
		t.Errorf("zero Signal Load() = %+v, expected all false", got)
	}
}

func TestSignalLastWriteWins(t *testing.T) {
	s := NewSignal()
	s.Publish(Flags{Smile: true})
	s.Publish(Flags{LeftEyeOpen: true})

	if got := s.Load(); got != (Flags{LeftEyeOpen: true}) {
		t.Errorf("Load() = %+v, expected only the last published flags", got)
	}
}

func TestSignalConcurrentAccess(t *testing.T) {
	s := NewSignal()
	valid := map[Flags]bool{
		{}:                                      true,
		{Smile: true}:                           true,
		{LeftEyeOpen: true, RightEyeOpen: true}: true,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				s.Publish(Flags{Smile: true})
			} else {
				s.Publish(Flags{LeftEyeOpen: true, RightEyeOpen: true})
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		if got := s.Load(); !valid[got] {
			t.Fatalf("Load() returned a torn value %+v", got)
		}
	}
	wg.Wait()
}

package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order once per frame.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Step advances w by dt seconds: every system sees the same Delta, and events
// not consumed during the frame are dropped afterwards.
func (s *Scheduler) Step(w *World, dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	for _, system := range s.systems {
		system.Update(w)
	}
	w.events.flush()
	w.frame++
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

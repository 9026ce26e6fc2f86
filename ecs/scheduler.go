package ecs

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

type scheduledSystem struct {
	system System
	runIf  func() bool
}

// Scheduler runs systems in a fixed order, each gated by an explicit
// predicate evaluated at the start of its slot.
type Scheduler struct {
	entries []scheduledSystem
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends an ungated system.
func (s *Scheduler) Add(system System) {
	s.AddIf(system, nil)
}

// AddIf appends a system that only runs while pred returns true.
func (s *Scheduler) AddIf(system System, pred func() bool) {
	if system == nil {
		return
	}
	s.entries = append(s.entries, scheduledSystem{system: system, runIf: pred})
}

// Update runs all eligible systems once.
func (s *Scheduler) Update(w *World) {
	if s == nil {
		return
	}
	for _, entry := range s.entries {
		if entry.runIf != nil && !entry.runIf() {
			continue
		}
		entry.system.Update(w)
	}
}

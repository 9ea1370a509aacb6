package controller

// Phase is the lifecycle state of one rendered submenu.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// submenuState tracks one rendered submenu: its phase and the single owned
// timer token. Arming a timer bumps seq so a stale expiry that lost the race
// against Stop is recognized and ignored.
type submenuState struct {
	phase Phase
	timer Timer
	seq   uint64
}

func (s *submenuState) cancelTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
}

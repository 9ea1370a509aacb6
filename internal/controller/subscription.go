package controller

import "sync"

// Subscription is an explicit handle for a host-level listener (outside
// click, Escape, resize). Attach returns one per listener; Destroy matches
// each handle against exactly one detach call, so leak-freedom is checkable.
type Subscription struct {
	Name   string
	once   sync.Once
	detach func()
}

// Detach removes the listener. Safe to call more than once.
func (s *Subscription) Detach() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.detach != nil {
			s.detach()
		}
	})
}

// Attach registers a host listener's detach function with the controller so
// teardown releases it. Returns nil after Destroy: the caller should not
// have attached anything.
func (c *Controller) Attach(name string, detach func()) *Subscription {
	sub := &Subscription{Name: name, detach: detach}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return nil
	}
	c.subs = append(c.subs, sub)
	return sub
}

// ActiveSubscriptions counts attached, not-yet-detached listeners.
// Instrumentation for the teardown contract.
func (c *Controller) ActiveSubscriptions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// ActiveTimers counts armed submenu timers. Instrumentation for the
// teardown contract.
func (c *Controller) ActiveTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, st := range c.states {
		if st.timer != nil {
			count++
		}
	}
	return count
}

package models

// EntityID implementations let the repository layer address any entity kind
// uniformly.

func (c *Course) EntityID() string    { return c.ID }
func (p *Professor) EntityID() string { return p.ID }
func (r *Room) EntityID() string      { return r.ID }
func (ts *TimeSlot) EntityID() string { return ts.ID }
func (s *Schedule) EntityID() string  { return s.ID }

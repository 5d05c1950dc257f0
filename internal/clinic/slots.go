package clinic

import "fmt"

// SlotCatalog is the fixed ordered sequence of bookable time labels for a
// working day, shared by every professional. Labels are zero-padded "HH:00"
// strings for every whole hour in [startHour, endHour] inclusive.
type SlotCatalog struct {
	slots []string
	index map[string]struct{}
}

func NewSlotCatalog(startHour, endHour int) *SlotCatalog {
	c := &SlotCatalog{index: make(map[string]struct{})}
	for hour := startHour; hour <= endHour; hour++ {
		label := fmt.Sprintf("%02d:00", hour)
		c.slots = append(c.slots, label)
		c.index[label] = struct{}{}
	}
	return c
}

// Slots returns the catalog in ascending order. The caller must not mutate
// the returned slice.
func (c *SlotCatalog) Slots() []string {
	return c.slots
}

func (c *SlotCatalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

func (c *SlotCatalog) Len() int {
	return len(c.slots)
}

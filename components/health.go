package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers Current by n, clamped at zero. It returns true when health
// reaches zero.
func (h *HealthData) Damage(n int) bool {
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

var Health = donburi.NewComponentType[HealthData]()

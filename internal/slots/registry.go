package slots

import (
	"maps"
	"slices"
	"sync"

	"auction-analytics/internal/models"
)

// Registry holds the ad-server slot state a host registered per ad unit code.
type Registry struct {
	mu    sync.RWMutex
	slots map[string]models.Slot
}

func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]models.Slot)}
}

// Register replaces the slot registered for adUnitCode.
func (r *Registry) Register(adUnitCode string, slot models.Slot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[adUnitCode] = cloneSlot(slot)
}

func (r *Registry) Remove(adUnitCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, adUnitCode)
}

// ResolveSlot returns a copy of the slot for adUnitCode, or nil when none is registered.
func (r *Registry) ResolveSlot(adUnitCode string) *models.Slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.slots[adUnitCode]
	if !ok {
		return nil
	}
	cp := cloneSlot(slot)
	return &cp
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func cloneSlot(slot models.Slot) models.Slot {
	targeting := make(map[string][]string, len(slot.Targeting))
	for key, values := range slot.Targeting {
		targeting[key] = slices.Clone(values)
	}
	return models.Slot{AdUnitPath: slot.AdUnitPath, Targeting: targeting}
}

// TargetingKeys returns the slot's targeting keys in sorted order.
func TargetingKeys(slot *models.Slot) []string {
	if slot == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(slot.Targeting))
}

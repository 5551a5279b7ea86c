package credits

import "sync"

// Guard lets at most one purchase per (buyer, item) run in this process.
type Guard struct {
	inflight sync.Map
}

// Acquire claims (buyerID, itemID). It returns false when another purchase
// for the same pair holds it; otherwise release must be called when done.
func (g *Guard) Acquire(buyerID, itemID string) (release func(), ok bool) {
	key := buyerID + "\x00" + itemID
	if _, loaded := g.inflight.LoadOrStore(key, struct{}{}); loaded {
		return nil, false
	}
	return func() { g.inflight.Delete(key) }, true
}

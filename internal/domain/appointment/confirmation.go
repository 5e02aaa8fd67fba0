package appointment

import (
	"fmt"
	"sync"
	"time"
)

// ConfirmationGenerator issues customer-facing confirmation numbers of the
// form APPT followed by the last eight digits of the creation time in unix
// milliseconds. Two creations inside the same millisecond would collide, so
// the generator bumps the counter past the previously issued value.
type ConfirmationGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewConfirmationGenerator() *ConfirmationGenerator {
	return &ConfirmationGenerator{}
}

func (g *ConfirmationGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := now.UnixMilli() % 100000000
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n

	return fmt.Sprintf("APPT%08d", n%100000000)
}

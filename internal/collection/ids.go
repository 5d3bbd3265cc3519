package collection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator hands out candidate identifiers for new records.
type IDGenerator interface {
	NextID() string
}

// idObserver is implemented by generators that must skip identifiers loaded from fixtures.
type idObserver interface {
	Observe(id string)
}

// UUIDGenerator issues random v4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// SequenceGenerator issues prefixed, zero-padded, monotonically increasing tags such as
// INV-001. It is driven under the owning store's lock and is not safe for concurrent use
// on its own.
type SequenceGenerator struct {
	prefix string
	width  int
	last   int
}

// NewSequenceGenerator starts a sequence whose first tag is prefix + 1 padded to width.
func NewSequenceGenerator(prefix string, width int) *SequenceGenerator {
	if width <= 0 {
		width = 1
	}
	return &SequenceGenerator{prefix: prefix, width: width}
}

func (g *SequenceGenerator) NextID() string {
	g.last++
	return fmt.Sprintf("%s%0*d", g.prefix, g.width, g.last)
}

// Observe moves the sequence past an existing tag so it is never reissued.
func (g *SequenceGenerator) Observe(id string) {
	if !strings.HasPrefix(id, g.prefix) {
		return
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, g.prefix))
	if err != nil {
		return
	}
	if n > g.last {
		g.last = n
	}
}

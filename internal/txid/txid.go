// Package txid issues the externally visible correlation ids attached to
// every transfer operation, completed or not.
package txid

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Issuer produces a fresh transfer id per call.
type Issuer interface {
	Issue() string
}

// Generator issues ids of the form DEB-<unix millis>-<4 digits>. The time
// component makes ids sort roughly chronologically; uniqueness holds with
// overwhelming probability within a process lifetime, which is all the
// volatile ledger needs.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Issue() string {
	return fmt.Sprintf("DEB-%d-%d", time.Now().UnixMilli(), 1000+rand.IntN(9000))
}

// Package objectives builds random target sequences.
package objectives

import (
	"math/rand"
	"time"
)

const (
	// MinTarget and MaxTarget bound generated targets, both inclusive.
	MinTarget = 0
	MaxTarget = 100
)

// Generator produces randomized targets.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns count targets drawn uniformly from [MinTarget, MaxTarget].
func (g *Generator) Generate(count int) []int {
	if count <= 0 {
		return nil
	}
	result := make([]int, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, MinTarget+g.rnd.Intn(MaxTarget-MinTarget+1))
	}
	return result
}

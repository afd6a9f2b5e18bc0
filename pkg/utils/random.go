package utils

import "math/rand/v2"

// NewRand cria um gerador determinístico a partir da semente da execução
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace identifiers.
// Time-ordered UUIDv7 values are preferred so that trace ids sort by
// arrival; a random UUIDv4 is used if v7 generation fails.
type TraceIDGenerator struct{}

// NewTraceIDGenerator returns a ready-to-use generator.
func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a new trace id.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

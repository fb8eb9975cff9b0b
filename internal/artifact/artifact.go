// Package artifact implements a small in-memory inventory of artifacts with
// filter and aggregate queries. It is a standalone utility; the ledger does
// not depend on it.
package artifact

import (
	"strings"

	"currency-ledger/internal/errors"
)

// Type classifies an artifact.
type Type string

const (
	Magical Type = "magical"
	Normal  Type = "normal"
)

// Artifact is a named record with a positive power level.
type Artifact struct {
	Name  string  `json:"name"`
	Power float64 `json:"power"`
	Type  Type    `json:"type"`
}

// Processor stores artifacts in insertion order.
type Processor struct {
	artifacts []Artifact
}

func NewProcessor() *Processor {
	return &Processor{}
}

// Add appends an artifact. Name must be non-empty after trimming and power
// must be strictly positive.
func (p *Processor) Add(name string, power float64, magical bool) (Artifact, error) {
	if strings.TrimSpace(name) == "" {
		return Artifact{}, errors.NewAppError(errors.InvalidArgument, "name must be a non-empty string")
	}
	if power <= 0 {
		return Artifact{}, errors.NewAppError(errors.InvalidArgument, "power must be > 0")
	}

	t := Normal
	if magical {
		t = Magical
	}
	a := Artifact{Name: name, Power: power, Type: t}
	p.artifacts = append(p.artifacts, a)
	return a, nil
}

// TotalPower sums the power of magical artifacts only; normal artifacts are
// ignored regardless of magnitude.
func (p *Processor) TotalPower() float64 {
	var total float64
	for _, a := range p.artifacts {
		if a.Type == Magical {
			total += a.Power
		}
	}
	return total
}

// MostPowerful returns the strongest artifact. On a tie the first-inserted
// record wins; ok is false when the inventory is empty.
func (p *Processor) MostPowerful() (Artifact, bool) {
	if len(p.artifacts) == 0 {
		return Artifact{}, false
	}
	max := p.artifacts[0]
	for _, a := range p.artifacts[1:] {
		if a.Power > max.Power {
			max = a
		}
	}
	return max, true
}

// Remove deletes every artifact whose name matches exactly and returns how
// many were removed.
func (p *Processor) Remove(name string) int {
	kept := p.artifacts[:0]
	removed := 0
	for _, a := range p.artifacts {
		if a.Name == name {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	p.artifacts = kept
	return removed
}

// ByType filters case-insensitively by type name. An unknown type yields an
// empty result; a blank type argument is an error.
func (p *Processor) ByType(artifactType string) ([]Artifact, error) {
	key := strings.ToLower(strings.TrimSpace(artifactType))
	if key == "" {
		return nil, errors.NewAppError(errors.InvalidArgument, "artifact type must be non-empty")
	}

	out := []Artifact{}
	for _, a := range p.artifacts {
		if strings.ToLower(string(a.Type)) == key {
			out = append(out, a)
		}
	}
	return out, nil
}

// Package scoring computes prior-art invalidity confidence for patent claims
// from the coverage catalogue. Every function here is pure and safe for
// concurrent use.
package scoring

import (
	"math"

	"github.com/joelkehle/assistant-desk/internal/priorart"
)

const (
	// CorroborationStep is added per covering reference beyond the first.
	CorroborationStep = 2
	// CorroborationCap bounds the boosted value.
	CorroborationCap = 98

	weakestWeight = 0.6
	averageWeight = 0.4
)

type ElementScore struct {
	ElementType   string   `json:"element_type"`
	Confidence    int      `json:"confidence"`
	BestReference string   `json:"best_reference,omitempty"`
	References    []string `json:"references"`
}

type ClaimScore struct {
	Label      string         `json:"label"`
	Confidence int            `json:"confidence"`
	Elements   []ElementScore `json:"elements"`
}

type PatentScore struct {
	PatentID   string       `json:"patent_id"`
	Confidence int          `json:"confidence"`
	PriorArt   []string     `json:"prior_art"`
	Claims     []ClaimScore `json:"claims"`
}

// Claim looks up a claim score by label.
func (p PatentScore) Claim(label string) (ClaimScore, bool) {
	for _, c := range p.Claims {
		if c.Label == label {
			return c, true
		}
	}
	return ClaimScore{}, false
}

// Coverage is the lookup the engine needs from a catalogue.
type Coverage interface {
	Strength(referenceID, elementType string) (int, bool)
}

type Catalogue interface {
	Coverage
	PriorArtIDs(patentID string) []string
	ClaimElements(patentID string) ([]priorart.Claim, bool)
	Patents() []priorart.PatentClaims
}

type Engine struct {
	cat Catalogue
}

func NewEngine(cat Catalogue) *Engine {
	return &Engine{cat: cat}
}

// ElementConfidence scores one element type against the candidate references,
// in the order given. The first reference reaching the maximum strength is the
// best reference.
func (e *Engine) ElementConfidence(elementType string, priorArtIDs []string) ElementScore {
	return elementConfidence(e.cat, elementType, priorArtIDs)
}

func elementConfidence(cov Coverage, elementType string, priorArtIDs []string) ElementScore {
	out := ElementScore{ElementType: elementType, References: []string{}}
	best := 0
	for _, id := range priorArtIDs {
		v, ok := cov.Strength(id, elementType)
		if !ok {
			continue
		}
		v = clamp(v)
		out.References = append(out.References, id)
		if v > best {
			best = v
			out.BestReference = id
		}
	}
	if n := len(out.References); n > 1 {
		best = min(CorroborationCap, best+(n-1)*CorroborationStep)
	}
	out.Confidence = best
	return out
}

// ClaimConfidence blends the weakest element (60%) with the mean (40%).
func ClaimConfidence(elementConfidences []int) int {
	if len(elementConfidences) == 0 {
		return 0
	}
	lo := elementConfidences[0]
	sum := 0
	for _, v := range elementConfidences {
		lo = min(lo, v)
		sum += v
	}
	avg := float64(sum) / float64(len(elementConfidences))
	return clamp(int(math.Round(float64(lo)*weakestWeight + avg*averageWeight)))
}

// PatentConfidence is the rounded mean of the claim confidences.
func PatentConfidence(claimConfidences []int) int {
	if len(claimConfidences) == 0 {
		return 0
	}
	sum := 0
	for _, v := range claimConfidences {
		sum += v
	}
	return clamp(int(math.Round(float64(sum) / float64(len(claimConfidences)))))
}

// ScorePatent scores every claim of a patent against its curated prior-art
// set. Unknown patents score zero across the board.
func (e *Engine) ScorePatent(patentID string, claims []priorart.Claim) PatentScore {
	ids := e.cat.PriorArtIDs(patentID)
	if ids == nil {
		ids = []string{}
	}
	out := PatentScore{PatentID: patentID, PriorArt: ids, Claims: make([]ClaimScore, 0, len(claims))}
	claimValues := make([]int, 0, len(claims))
	for _, cl := range claims {
		cs := ClaimScore{Label: cl.Label, Elements: make([]ElementScore, 0, len(cl.Elements))}
		var nonZero []int
		for _, el := range cl.Elements {
			es := elementConfidence(e.cat, el, ids)
			cs.Elements = append(cs.Elements, es)
			if es.Confidence > 0 {
				nonZero = append(nonZero, es.Confidence)
			}
		}
		cs.Confidence = ClaimConfidence(nonZero)
		out.Claims = append(out.Claims, cs)
		claimValues = append(claimValues, cs.Confidence)
	}
	out.Confidence = PatentConfidence(claimValues)
	return out
}

// Score scores a patent using the catalogue's own claim element map.
func (e *Engine) Score(patentID string) (PatentScore, bool) {
	claims, ok := e.cat.ClaimElements(patentID)
	if !ok {
		return PatentScore{}, false
	}
	return e.ScorePatent(patentID, claims), true
}

// ScoreAll scores every patent in the catalogue's claim element map, in
// catalogue order.
func (e *Engine) ScoreAll() []PatentScore {
	patents := e.cat.Patents()
	out := make([]PatentScore, 0, len(patents))
	for _, p := range patents {
		out = append(out, e.ScorePatent(p.PatentID, p.Claims))
	}
	return out
}

// ScoreAllByID is ScoreAll keyed by patent id.
func (e *Engine) ScoreAllByID() map[string]PatentScore {
	all := e.ScoreAll()
	out := make(map[string]PatentScore, len(all))
	for _, s := range all {
		out[s.PatentID] = s
	}
	return out
}

func clamp(v int) int {
	return max(0, min(100, v))
}

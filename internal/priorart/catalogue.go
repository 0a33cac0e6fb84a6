// Package priorart holds the static prior-art catalogue used by the
// invalidity scoring engine: references, claim element types, the sparse
// coverage table and the curated patent maps. All data is read-only after
// construction and every ordered view preserves authoring order.
package priorart

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

type ReferenceType string

const (
	TypePatent      ReferenceType = "patent"
	TypePublication ReferenceType = "publication"
	TypeProduct     ReferenceType = "product"
	TypeStandard    ReferenceType = "standard"
)

type Reference struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	PatentNumber         string        `json:"patent_number,omitempty"`
	Citation             string        `json:"citation"`
	Type                 ReferenceType `json:"type"`
	FilingDate           string        `json:"filing_date,omitempty"`
	Relevance            string        `json:"relevance"`
	KeyTeachings         []string      `json:"key_teachings"`
	Figures              []string      `json:"figures,omitempty"`
	ClaimElementsCovered []string      `json:"claim_elements_covered"`
	// BaseConfidence is informational and plays no part in scoring.
	BaseConfidence int `json:"base_confidence"`
}

type ElementType struct {
	ID          string  `json:"id"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// CoverageTable maps reference id -> element type id -> strength (0-100).
// A missing entry means the reference does not address the element.
type CoverageTable map[string]map[string]int

func (t CoverageTable) Strength(referenceID, elementType string) (int, bool) {
	row, ok := t[referenceID]
	if !ok {
		return 0, false
	}
	v, ok := row[elementType]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

type PatentPriorArt struct {
	PatentID     string   `json:"patent_id"`
	ReferenceIDs []string `json:"reference_ids"`
}

type Claim struct {
	Label    string   `json:"label"`
	Elements []string `json:"elements"`
}

type PatentClaims struct {
	PatentID string  `json:"patent_id"`
	Claims   []Claim `json:"claims"`
}

// Catalogue is an immutable, order-preserving view over the prior-art data.
type Catalogue struct {
	references []Reference
	refIndex   map[string]int
	elements   []ElementType
	elemIndex  map[string]int
	coverage   CoverageTable
	patentArt  []PatentPriorArt
	artIndex   map[string]int
	claims     []PatentClaims
	claimIndex map[string]int
}

// New builds a catalogue from the given data. Inputs are deep-copied so later
// mutation by the caller cannot leak in. Duplicate ids keep the first entry.
func New(refs []Reference, elements []ElementType, coverage CoverageTable, patentArt []PatentPriorArt, claims []PatentClaims) *Catalogue {
	c := &Catalogue{
		refIndex:   map[string]int{},
		elemIndex:  map[string]int{},
		coverage:   CoverageTable{},
		artIndex:   map[string]int{},
		claimIndex: map[string]int{},
	}
	for _, r := range refs {
		if _, dup := c.refIndex[r.ID]; dup {
			continue
		}
		c.refIndex[r.ID] = len(c.references)
		c.references = append(c.references, cloneReference(r))
	}
	for _, e := range elements {
		if _, dup := c.elemIndex[e.ID]; dup {
			continue
		}
		c.elemIndex[e.ID] = len(c.elements)
		c.elements = append(c.elements, e)
	}
	for refID, row := range coverage {
		cp := make(map[string]int, len(row))
		for k, v := range row {
			cp[k] = v
		}
		c.coverage[refID] = cp
	}
	for _, p := range patentArt {
		if _, dup := c.artIndex[p.PatentID]; dup {
			continue
		}
		c.artIndex[p.PatentID] = len(c.patentArt)
		c.patentArt = append(c.patentArt, PatentPriorArt{PatentID: p.PatentID, ReferenceIDs: slices.Clone(p.ReferenceIDs)})
	}
	for _, p := range claims {
		if _, dup := c.claimIndex[p.PatentID]; dup {
			continue
		}
		c.claimIndex[p.PatentID] = len(c.claims)
		c.claims = append(c.claims, PatentClaims{PatentID: p.PatentID, Claims: cloneClaims(p.Claims)})
	}
	return c
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the built-in catalogue, constructed once per process.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		defaultCat = New(defaultReferences, defaultElements, defaultCoverage, defaultPatentPriorArt, defaultClaimElements)
	})
	return defaultCat
}

func (c *Catalogue) Reference(id string) (Reference, bool) {
	i, ok := c.refIndex[id]
	if !ok {
		return Reference{}, false
	}
	return cloneReference(c.references[i]), true
}

// References returns every reference in catalogue order.
func (c *Catalogue) References() []Reference {
	out := make([]Reference, 0, len(c.references))
	for _, r := range c.references {
		out = append(out, cloneReference(r))
	}
	return out
}

func (c *Catalogue) Element(id string) (ElementType, bool) {
	i, ok := c.elemIndex[id]
	if !ok {
		return ElementType{}, false
	}
	return c.elements[i], true
}

func (c *Catalogue) Elements() []ElementType {
	return slices.Clone(c.elements)
}

func (c *Catalogue) Strength(referenceID, elementType string) (int, bool) {
	return c.coverage.Strength(referenceID, elementType)
}

// PriorArtIDs returns the ordered reference ids curated for a patent. Unknown
// patents yield nil.
func (c *Catalogue) PriorArtIDs(patentID string) []string {
	i, ok := c.artIndex[patentID]
	if !ok {
		return nil
	}
	return slices.Clone(c.patentArt[i].ReferenceIDs)
}

// ReferencesForPatent resolves PriorArtIDs against the catalogue, skipping ids
// that have no reference entry.
func (c *Catalogue) ReferencesForPatent(patentID string) []Reference {
	var out []Reference
	for _, id := range c.PriorArtIDs(patentID) {
		if r, ok := c.Reference(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// ReferencesForElement matches free text against each reference's covered
// element descriptions, case-insensitively and in either direction.
func (c *Catalogue) ReferencesForElement(element string) []Reference {
	needle := strings.ToLower(strings.TrimSpace(element))
	if needle == "" {
		return nil
	}
	var out []Reference
	for _, r := range c.references {
		for _, covered := range r.ClaimElementsCovered {
			cv := strings.ToLower(covered)
			if strings.Contains(needle, cv) || strings.Contains(cv, needle) {
				out = append(out, cloneReference(r))
				break
			}
		}
	}
	return out
}

func (c *Catalogue) ClaimElements(patentID string) ([]Claim, bool) {
	i, ok := c.claimIndex[patentID]
	if !ok {
		return nil, false
	}
	return cloneClaims(c.claims[i].Claims), true
}

// Patents returns the claim element map in authoring order.
func (c *Catalogue) Patents() []PatentClaims {
	out := make([]PatentClaims, 0, len(c.claims))
	for _, p := range c.claims {
		out = append(out, PatentClaims{PatentID: p.PatentID, Claims: cloneClaims(p.Claims)})
	}
	return out
}

type Issue struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Detail  string `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Subject, i.Detail)
}

// Validate reports authoring-time consistency problems. Scoring tolerates all
// of them as zero coverage; this exists for tests and startup diagnostics.
func (c *Catalogue) Validate() []Issue {
	var issues []Issue
	for _, p := range c.patentArt {
		for _, id := range p.ReferenceIDs {
			if _, ok := c.refIndex[id]; !ok {
				issues = append(issues, Issue{Kind: "unknown_reference", Subject: p.PatentID, Detail: id})
			}
		}
	}
	refIDs := make([]string, 0, len(c.coverage))
	for id := range c.coverage {
		refIDs = append(refIDs, id)
	}
	slices.Sort(refIDs)
	covered := map[string]bool{}
	for _, refID := range refIDs {
		if _, ok := c.refIndex[refID]; !ok {
			issues = append(issues, Issue{Kind: "unknown_reference", Subject: "coverage", Detail: refID})
		}
		elems := make([]string, 0, len(c.coverage[refID]))
		for e := range c.coverage[refID] {
			elems = append(elems, e)
		}
		slices.Sort(elems)
		for _, e := range elems {
			if _, ok := c.elemIndex[e]; !ok {
				issues = append(issues, Issue{Kind: "unknown_element", Subject: refID, Detail: e})
			}
			if v := c.coverage[refID][e]; v < 0 || v > 100 {
				issues = append(issues, Issue{Kind: "strength_out_of_range", Subject: refID, Detail: fmt.Sprintf("%s=%d", e, v)})
			}
			covered[e] = true
		}
	}
	for _, p := range c.claims {
		if _, ok := c.artIndex[p.PatentID]; !ok {
			issues = append(issues, Issue{Kind: "missing_prior_art", Subject: p.PatentID, Detail: "no prior-art set"})
		}
		for _, cl := range p.Claims {
			for _, e := range cl.Elements {
				if _, ok := c.elemIndex[e]; !ok {
					issues = append(issues, Issue{Kind: "unknown_element", Subject: p.PatentID + " " + cl.Label, Detail: e})
				}
			}
		}
	}
	for _, e := range c.elements {
		if !covered[e.ID] {
			issues = append(issues, Issue{Kind: "uncovered_element", Subject: e.ID, Detail: "no reference covers this element"})
		}
	}
	return issues
}

func cloneReference(r Reference) Reference {
	r.KeyTeachings = slices.Clone(r.KeyTeachings)
	r.Figures = slices.Clone(r.Figures)
	r.ClaimElementsCovered = slices.Clone(r.ClaimElementsCovered)
	return r
}

func cloneClaims(in []Claim) []Claim {
	if in == nil {
		return nil
	}
	out := make([]Claim, len(in))
	for i, cl := range in {
		out[i] = Claim{Label: cl.Label, Elements: slices.Clone(cl.Elements)}
	}
	return out
}

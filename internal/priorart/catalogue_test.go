package priorart

import (
	"strings"
	"testing"
)

func TestDefaultCatalogueIsConsistent(t *testing.T) {
	issues := Default().Validate()
	if len(issues) != 0 {
		for _, is := range issues {
			t.Errorf("catalogue issue: %s", is)
		}
	}
}

func TestDefaultCatalogueSizes(t *testing.T) {
	c := Default()
	if got := len(c.References()); got != 16 {
		t.Fatalf("expected 16 references, got %d", got)
	}
	if got := len(c.Elements()); got != 21 {
		t.Fatalf("expected 21 element types, got %d", got)
	}
	if got := len(c.Patents()); got != 18 {
		t.Fatalf("expected 18 patents, got %d", got)
	}
}

func TestPatentsPreserveAuthoringOrder(t *testing.T) {
	patents := Default().Patents()
	want := []string{"140", "141", "142", "275", "279", "444", "458", "535", "550", "387", "639", "026", "330", "658", "399", "515", "334", "884"}
	if len(patents) != len(want) {
		t.Fatalf("expected %d patents, got %d", len(want), len(patents))
	}
	for i, p := range patents {
		if p.PatentID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], p.PatentID)
		}
	}
	claims, ok := Default().ClaimElements("550")
	if !ok || len(claims) != 8 {
		t.Fatalf("expected 8 claims for 550, got %d (ok=%v)", len(claims), ok)
	}
	if claims[0].Label != "Claim 1" || claims[7].Label != "Claim 27" {
		t.Fatalf("unexpected claim order: %+v", claims)
	}
}

func TestStrengthTreatsMissingAndZeroAsAbsent(t *testing.T) {
	table := CoverageTable{"a": {"x": 80, "z": 0}}
	if v, ok := table.Strength("a", "x"); !ok || v != 80 {
		t.Fatalf("expected 80, got %d ok=%v", v, ok)
	}
	if _, ok := table.Strength("a", "y"); ok {
		t.Fatal("expected missing element to be absent")
	}
	if _, ok := table.Strength("a", "z"); ok {
		t.Fatal("expected zero strength to be absent")
	}
	if _, ok := table.Strength("b", "x"); ok {
		t.Fatal("expected missing reference to be absent")
	}
}

func TestReferencesForPatentSkipsUnknownIDs(t *testing.T) {
	c := New(
		[]Reference{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		nil,
		nil,
		[]PatentPriorArt{{PatentID: "p", ReferenceIDs: []string{"b", "ghost", "a"}}},
		nil,
	)
	refs := c.ReferencesForPatent("p")
	if len(refs) != 2 || refs[0].ID != "b" || refs[1].ID != "a" {
		t.Fatalf("unexpected references: %+v", refs)
	}
	if c.ReferencesForPatent("missing") != nil {
		t.Fatal("expected nil for unknown patent")
	}
	issues := c.Validate()
	if len(issues) != 1 || issues[0].Kind != "unknown_reference" || issues[0].Detail != "ghost" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestReferencesForElementMatchesEitherDirection(t *testing.T) {
	c := Default()
	refs := c.ReferencesForElement("Magnetic Coupling")
	ids := map[string]bool{}
	for _, r := range refs {
		ids[r.ID] = true
	}
	for _, want := range []string{"supran-408", "supran-416", "iport-launchport", "iport-charge-case"} {
		if !ids[want] {
			t.Fatalf("expected %s in %v", want, ids)
		}
	}
	// "male plug (Lightning)" contains "male plug" and vice versa for the longer needle.
	refs = c.ReferencesForElement("a male plug (lightning) with pins")
	found := false
	for _, r := range refs {
		if r.ID == "iport-launchport" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected iport-launchport to match a needle containing its covered text")
	}
	if c.ReferencesForElement("   ") != nil {
		t.Fatal("expected blank needle to match nothing")
	}
}

func TestReturnedDataIsCopied(t *testing.T) {
	c := Default()
	r, _ := c.Reference("thiers")
	r.KeyTeachings[0] = "mutated"
	again, _ := c.Reference("thiers")
	if strings.Contains(again.KeyTeachings[0], "mutated") {
		t.Fatal("reference slices must not alias catalogue storage")
	}
	ids := c.PriorArtIDs("550")
	ids[0] = "mutated"
	if c.PriorArtIDs("550")[0] != "hoellwarth-850" {
		t.Fatal("prior-art ids must not alias catalogue storage")
	}
}

func TestNewKeepsFirstDuplicate(t *testing.T) {
	c := New([]Reference{{ID: "a", Name: "first"}, {ID: "a", Name: "second"}}, nil, nil, nil, nil)
	r, ok := c.Reference("a")
	if !ok || r.Name != "first" {
		t.Fatalf("expected first duplicate to win, got %+v", r)
	}
}

func TestValidateFlagsUncoveredAndUnknownElements(t *testing.T) {
	c := New(
		[]Reference{{ID: "a"}},
		[]ElementType{{ID: "x"}, {ID: "y"}},
		CoverageTable{"a": {"x": 90, "bogus": 10}},
		[]PatentPriorArt{{PatentID: "p", ReferenceIDs: []string{"a"}}},
		[]PatentClaims{{PatentID: "p", Claims: []Claim{{Label: "Claim 1", Elements: []string{"x", "nope"}}}}, {PatentID: "q"}},
	)
	kinds := map[string]int{}
	for _, is := range c.Validate() {
		kinds[is.Kind]++
	}
	if kinds["unknown_element"] != 2 || kinds["uncovered_element"] != 1 || kinds["missing_prior_art"] != 1 {
		t.Fatalf("unexpected issue kinds: %v", kinds)
	}
}

// Package classifier decides whether a normalized message needs a reply.
// Ordered pattern rules run first; only inconclusive messages reach the
// configured generative providers.
package classifier

type RequiresResponse string

const (
	Yes   RequiresResponse = "yes"
	No    RequiresResponse = "no"
	Maybe RequiresResponse = "maybe"
)

type Confidence string

const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

type Method string

const (
	MethodRule Method = "rule"
	MethodLLM  Method = "llm"
)

type Result struct {
	RequiresResponse RequiresResponse `json:"requires_response"`
	Confidence       Confidence       `json:"confidence"`
	Reason           string           `json:"reason"`
	Method           Method           `json:"method"`
}

// Final reports whether a rule result can be accepted without a provider call.
func (r Result) Final() bool {
	return r.Confidence != Low
}

const unableReason = "Unable to classify"

func unableToClassify() Result {
	return Result{RequiresResponse: Maybe, Confidence: Low, Reason: unableReason, Method: MethodRule}
}

type Summary struct {
	Total    int            `json:"total"`
	Yes      int            `json:"yes"`
	No       int            `json:"no"`
	Maybe    int            `json:"maybe"`
	ByMethod map[Method]int `json:"by_method"`
}

// Summarize counts results by answer and by method.
func Summarize(results map[string]Result) Summary {
	s := Summary{Total: len(results), ByMethod: map[Method]int{MethodRule: 0, MethodLLM: 0}}
	for _, r := range results {
		switch r.RequiresResponse {
		case Yes:
			s.Yes++
		case No:
			s.No++
		default:
			s.Maybe++
		}
		s.ByMethod[r.Method]++
	}
	return s
}

package classifier

import (
	"regexp"
	"strings"

	"github.com/joelkehle/assistant-desk/internal/messages"
)

type pattern struct {
	re *regexp.Regexp
	// noQuestionAfter rejects matches followed anywhere later by a '?'.
	noQuestionAfter bool
}

func (p pattern) match(text string) bool {
	if !p.noQuestionAfter {
		return p.re.MatchString(text)
	}
	for _, loc := range p.re.FindAllStringIndex(text, -1) {
		if !strings.Contains(text[loc[1]:], "?") {
			return true
		}
	}
	return false
}

func patterns(exprs ...string) []pattern {
	out := make([]pattern, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, pattern{re: regexp.MustCompile("(?i)" + e)})
	}
	return out
}

// Family is one ordered group of patterns sharing a verdict.
type Family struct {
	Name     string
	Result   Result
	patterns []pattern
}

func (f Family) matches(text string) bool {
	for _, p := range f.patterns {
		if p.match(text) {
			return true
		}
	}
	return false
}

func noHigh(reason string) Result {
	return Result{RequiresResponse: No, Confidence: High, Reason: reason, Method: MethodRule}
}

var informationalFamily = Family{
	Name:   "informational",
	Result: noHigh("Appears to be informational/acknowledgment"),
	patterns: patterns(
		`\b(fyi|for your information|just sharing|no response needed|no action needed)\b`,
		`\b(auto-?generated|automated message|do not reply)\b`,
		`\b(has been (scheduled|canceled|updated|accepted|declined))\b`,
		`\b(reminder|notification|alert):`,
		`\b(out of office|ooo)\b`,
		`\bthank(s| you)\b.*!?$`,
		`\b(sounds good|perfect|great|got it|noted|will do)\b.*!?$`,
	),
}

var calendarFamily = Family{
	Name:   "calendar",
	Result: noHigh("Calendar notification"),
	patterns: patterns(
		`\b(meeting|invite|calendar|scheduled for)\b`,
		`\b(accepted|declined|tentative)\b.*\binvitation\b`,
	),
}

var newsletterFamily = Family{
	Name:   "newsletter",
	Result: noHigh("Newsletter/marketing email"),
	patterns: patterns(
		`\bunsubscribe\b`,
		`\bview in browser\b`,
		`\bnewsletter\b`,
		`\bdigest\b`,
		`\bweekly roundup\b`,
		`\bdaily summary\b`,
		`\bmonthly update\b`,
	),
}

var advertisementFamily = Family{
	Name:   "advertisement",
	Result: noHigh("Advertisement/promotional"),
	patterns: patterns(
		`\b(sale|discount|offer|promo|deal|% off|free shipping)\b`,
		`\b(limited time|act now|don't miss|expires|last chance)\b`,
		`\b(shop now|buy now|order now|get yours)\b`,
		`\b(sponsored|advertisement|partner content)\b`,
		`\b(webinar|register now|sign up today|join us for)\b`,
		`\b(we miss you|come back|haven't seen you)\b`,
		`\b(new arrivals|just dropped|now available)\b`,
		`\b(black friday|cyber monday|holiday sale)\b`,
	),
}

var readOnlyFamily = Family{
	Name:   "read_only",
	Result: noHigh("Read-only notification"),
	patterns: append(patterns(
		`\b(has been (shipped|delivered|completed|processed))\b`,
		`\b(order confirmation|shipping confirmation|delivery update)\b`,
		`\b(receipt|invoice|statement) (for|from)\b`,
		`\b(security alert|login from|new sign-?in)\b`,
		`\b(password (changed|reset|updated))\b`,
		`\b(your (report|summary|statement) is ready)\b`,
		`\b(successfully (created|updated|deleted|completed))\b`,
		`\b(build (passed|failed|succeeded))\b`,
		`\b(deployed to|deployment complete)\b`,
		`\b(joined|left|added|removed) (the|a) (channel|group|team)\b`,
		`\b(shared a (file|document|link) with you)\b`,
		`\b(daily report|weekly report|automated report)\b`,
	), pattern{re: regexp.MustCompile(`(?i)\b(commented on|mentioned you in|reacted to)\b`), noQuestionAfter: true}),
}

var needsResponseFamily = Family{
	Name:   "needs_response",
	Result: Result{RequiresResponse: Yes, Confidence: Medium, Reason: "Contains question or action request", Method: MethodRule},
	patterns: patterns(
		`\?$`,
		`\b(can you|could you|would you|will you|please|pls)\b`,
		`\b(what do you think|your thoughts|your opinion|your feedback)\b`,
		`\b(need|require|request|asking)\b.*\b(your|you to)\b`,
		`\b(urgent|asap|time.?sensitive|by (today|tomorrow|eod|eow|friday))\b`,
		`\b(approve|sign.?off|review|confirm|decision)\b`,
		`\b(waiting for|awaiting|pending) (your|you)\b`,
		`\b(let me know|lmk|get back to me)\b`,
	),
}

// Families lists the rule families in evaluation order. The first family with
// a matching pattern decides the result.
var Families = []Family{
	informationalFamily,
	calendarFamily,
	newsletterFamily,
	advertisementFamily,
	readOnlyFamily,
	needsResponseFamily,
}

const directMessageFamily = "direct_message"

var directMessageResult = Result{RequiresResponse: Maybe, Confidence: Low, Reason: "Direct message - may need response", Method: MethodRule}

func ruleText(m messages.Message) string {
	return strings.TrimSpace(strings.ToLower(m.Subject + " " + m.Preview))
}

// ApplyRules evaluates the rule families against a message. It returns the
// matching family name and false when no rule applies.
func ApplyRules(m messages.Message) (Result, string, bool) {
	text := ruleText(m)
	for _, f := range Families {
		if f.matches(text) {
			return f.Result, f.Name, true
		}
	}
	if m.IsDirectMessage && m.Source != messages.SourceEmailWork {
		return directMessageResult, directMessageFamily, true
	}
	return Result{}, "", false
}

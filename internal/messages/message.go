// Package messages defines the normalized message record produced by the
// provider fetchers and the dashboard aggregations computed over it.
package messages

import (
	"sort"
	"time"
)

type Source string

const (
	SourceSlack         Source = "slack"
	SourceTeamsMention  Source = "teams_mention"
	SourceTeamsDM       Source = "teams_dm"
	SourceEmailWork     Source = "email_work"
	SourceEmailPersonal Source = "email_personal"
	SourceIMessage      Source = "imessage"
)

// Sources lists every channel in dashboard display order.
var Sources = []Source{SourceSlack, SourceTeamsMention, SourceTeamsDM, SourceEmailWork, SourceEmailPersonal, SourceIMessage}

var sourceLabels = map[Source]string{
	SourceSlack:         "Slack",
	SourceTeamsMention:  "Teams @ Mention",
	SourceTeamsDM:       "Teams DM",
	SourceEmailWork:     "Email (Work)",
	SourceEmailPersonal: "Email (Personal)",
	SourceIMessage:      "Apple Messages",
}

func SourceLabel(s Source) string {
	if l, ok := sourceLabels[s]; ok {
		return l
	}
	return string(s)
}

type Status string

const (
	StatusUnread    Status = "unread"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
	StatusArchived  Status = "archived"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Message is the unified record every provider maps into.
type Message struct {
	ID                  string     `json:"id"`
	Source              Source     `json:"source"`
	ExternalID          string     `json:"external_id,omitempty"`
	SenderName          string     `json:"sender_name"`
	SenderEmail         string     `json:"sender_email,omitempty"`
	Subject             string     `json:"subject,omitempty"`
	Preview             string     `json:"preview"`
	ReceivedAt          time.Time  `json:"received_at"`
	RespondedAt         *time.Time `json:"responded_at,omitempty"`
	ResponseTimeMinutes float64    `json:"response_time_minutes,omitempty"`
	Status              Status     `json:"status,omitempty"`
	Priority            Priority   `json:"priority,omitempty"`
	ThreadID            string     `json:"thread_id,omitempty"`
	ChannelName         string     `json:"channel_name,omitempty"`
	IsDirectMessage     bool       `json:"is_direct_message"`
	RequiresResponse    *bool      `json:"requires_response,omitempty"`
}

func (m Message) Responded() bool {
	return m.Status == StatusResponded
}

// Merge concatenates provider batches, keeps the first occurrence of each id
// and orders the result newest first.
func Merge(batches ...[]Message) []Message {
	seen := map[string]bool{}
	var out []Message
	for _, batch := range batches {
		for _, m := range batch {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out
}

package messages

import (
	"math"
	"time"
)

type SourceMetrics struct {
	Source                 Source   `json:"source"`
	TotalReceived          int      `json:"total_received"`
	TotalResponded         int      `json:"total_responded"`
	AvgResponseTimeMinutes float64  `json:"avg_response_time_minutes"`
	PendingCount           int      `json:"pending_count"`
	OldestPendingMinutes   *float64 `json:"oldest_pending_minutes,omitempty"`
}

// BySource computes per-channel counts for every known source, in Sources
// order, including channels with no traffic.
func BySource(msgs []Message, now time.Time) []SourceMetrics {
	out := make([]SourceMetrics, 0, len(Sources))
	for _, src := range Sources {
		sm := SourceMetrics{Source: src}
		total := 0.0
		for _, m := range msgs {
			if m.Source != src {
				continue
			}
			sm.TotalReceived++
			if m.Responded() {
				sm.TotalResponded++
				total += m.ResponseTimeMinutes
				continue
			}
			sm.PendingCount++
			age := math.Floor(now.Sub(m.ReceivedAt).Minutes())
			if sm.OldestPendingMinutes == nil || age > *sm.OldestPendingMinutes {
				sm.OldestPendingMinutes = &age
			}
		}
		if sm.TotalResponded > 0 {
			sm.AvgResponseTimeMinutes = total / float64(sm.TotalResponded)
		}
		out = append(out, sm)
	}
	return out
}

type Summary struct {
	TotalMessages          int     `json:"total_messages"`
	PendingMessages        int     `json:"pending_messages"`
	RespondedMessages      int     `json:"responded_messages"`
	AvgResponseTimeMinutes float64 `json:"avg_response_time_minutes"`
	ResponseRate           float64 `json:"response_rate"`
	Under30MinCount        int     `json:"under_30_min_count"`
	Under2HoursCount       int     `json:"under_2_hours_count"`
	Over2HoursCount        int     `json:"over_2_hours_count"`
}

// Summarize reports overall response-time figures. The under-2-hours bucket
// includes the under-30-minutes one.
func Summarize(msgs []Message) Summary {
	s := Summary{TotalMessages: len(msgs)}
	total := 0.0
	for _, m := range msgs {
		if !m.Responded() {
			s.PendingMessages++
			continue
		}
		s.RespondedMessages++
		total += m.ResponseTimeMinutes
		switch {
		case m.ResponseTimeMinutes <= 30:
			s.Under30MinCount++
			s.Under2HoursCount++
		case m.ResponseTimeMinutes <= 120:
			s.Under2HoursCount++
		default:
			s.Over2HoursCount++
		}
	}
	if s.RespondedMessages > 0 {
		s.AvgResponseTimeMinutes = total / float64(s.RespondedMessages)
	}
	if s.TotalMessages > 0 {
		s.ResponseRate = float64(s.RespondedMessages) / float64(s.TotalMessages) * 100
	}
	return s
}

// ResponseTargets holds the target response time in hours per channel shown on
// the public dashboard. iMessage is not tracked against a target.
var ResponseTargets = []struct {
	Source Source
	Hours  float64
}{
	{SourceEmailWork, 4},
	{SourceEmailPersonal, 8},
	{SourceSlack, 2},
	{SourceTeamsMention, 2},
	{SourceTeamsDM, 1},
}

type ChannelResponse struct {
	Source             Source   `json:"source"`
	AvgHours           *float64 `json:"avg"`
	TargetHours        float64  `json:"target"`
	Count              int      `json:"count"`
	Responded          int      `json:"responded"`
	OldestPendingHours float64  `json:"oldest_pending_hours"`
}

// ResponseByChannel reports average response hours against each channel's
// target. Only responded messages with a positive response time count toward
// the average; everything else contributes to the oldest pending age.
func ResponseByChannel(msgs []Message, now time.Time) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(ResponseTargets))
	for _, t := range ResponseTargets {
		cr := ChannelResponse{Source: t.Source, TargetHours: t.Hours}
		totalMinutes := 0.0
		oldest := 0.0
		for _, m := range msgs {
			if m.Source != t.Source {
				continue
			}
			cr.Count++
			if m.Responded() && m.ResponseTimeMinutes > 0 {
				cr.Responded++
				totalMinutes += m.ResponseTimeMinutes
				continue
			}
			oldest = math.Max(oldest, math.Floor(now.Sub(m.ReceivedAt).Minutes()))
		}
		if cr.Responded > 0 {
			avg := roundTenth(totalMinutes / float64(cr.Responded) / 60)
			cr.AvgHours = &avg
		}
		cr.OldestPendingHours = roundTenth(oldest / 60)
		out = append(out, cr)
	}
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

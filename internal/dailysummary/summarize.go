package dailysummary

import (
	"time"

	"go-workforce/internal/timesession"
)

// DayInput is everything the status derivation looks at for one member-day.
type DayInput struct {
	Sessions         []timesession.Session
	ScheduledMinutes int
	GraceMinutes     int
	// BreakAllowanceMinutes of unpaid break are paid by the shift and credited
	// back to worked time.
	BreakAllowanceMinutes int
	Holiday               bool
	// Now closes open sessions for the live view. Zero means open sessions
	// are ignored, which is what the nightly batch sees.
	Now time.Time
}

type Result struct {
	WorkedMinutes    int
	ExtraMinutes     int
	ShortMinutes     int
	ScheduledMinutes int
	Status           string
}

// Summarize derives worked/extra/short minutes and the attendance status.
// The order of the checks matters.
func Summarize(in DayInput) Result {
	worked := WorkedMinutes(in.Sessions, in.Now, in.BreakAllowanceMinutes)
	sched := in.ScheduledMinutes
	if sched < 0 {
		sched = 0
	}
	res := Result{WorkedMinutes: worked, ScheduledMinutes: sched}

	switch {
	case sched == 0:
		res.Status = StatusUnconfigured
		if worked > 0 {
			res.Status = StatusNormal
		}
	case worked == 0:
		res.Status = StatusAbsent
		if in.Holiday {
			res.Status = StatusUnconfigured
		}
	case worked > sched:
		res.Status = StatusExtra
		res.ExtraMinutes = worked - sched
	case worked < sched:
		short := sched - worked
		if short <= in.GraceMinutes {
			res.Status = StatusNormal
			break
		}
		res.Status = StatusShort
		res.ShortMinutes = short
	default:
		res.Status = StatusNormal
	}
	return res
}

// WorkedMinutes sums session time minus unpaid break time beyond allowance.
// Closed sessions contribute their recorded total; an open session runs until
// now. Unpaid breaks up to allowance minutes per day count as worked.
func WorkedMinutes(sessions []timesession.Session, now time.Time, allowance int) int {
	total, unpaid := 0, 0
	for _, s := range sessions {
		var end time.Time
		var span int
		switch {
		case s.EndTime != nil:
			end = *s.EndTime
			span = timesession.ElapsedMinutes(s.StartTime, end)
			if s.TotalMinutes != nil {
				span = *s.TotalMinutes
			}
		case !now.IsZero():
			end = now
			span = timesession.ElapsedMinutes(s.StartTime, end)
		default:
			continue
		}
		if span <= 0 {
			continue
		}

		breaks := 0
		for _, b := range s.Breaks {
			if b.IsPaid {
				continue
			}
			bEnd := end
			if b.EndTime != nil && b.EndTime.Before(end) {
				bEnd = *b.EndTime
			}
			bStart := b.StartTime
			if bStart.Before(s.StartTime) {
				bStart = s.StartTime
			}
			breaks += timesession.ElapsedMinutes(bStart, bEnd)
		}
		total += span
		unpaid += min(breaks, span)
	}

	if allowance < 0 {
		allowance = 0
	}
	return total - max(0, unpaid-allowance)
}

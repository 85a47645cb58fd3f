// Package docket schedules court dates: plain day-offset arithmetic plus the
// weekend roll-forward rule. Only Saturday and Sunday count as non-working
// days; statutory holidays are out of scope for now.
package docket

import (
	"github.com/coolbeans/lexcalc/pkg/types"
)

// Statutory day presets used to pre-fill schedule queries. Overridable via
// the presets file, see the config package.
const (
	// DefaultAnnouncementDays is the announcement period before a hearing
	// can be held when service is by public notice.
	DefaultAnnouncementDays = 30
	// DefaultAppealDays is the appeal period for domestic judgments.
	DefaultAppealDays = 15
	// DefaultForeignJudgmentDays is the appeal period for foreign-related
	// judgments.
	DefaultForeignJudgmentDays = 60
	// DefaultReplyDays is the period for the defendant to file a defense.
	DefaultReplyDays = 15
)

// CourtSchedule is the ordered sequence of key dates leading to a hearing.
type CourtSchedule struct {
	Notice    types.Date // notice served
	NoticeEnd types.Date // notice period ends
	ReplyEnd  types.Date // reply/defense period ends
	Proposed  types.Date // hearing date as originally computed
	Final     types.Date // hearing date after weekend roll-forward
}

// KeyDates returns the schedule's five dates in chronological order.
func (s CourtSchedule) KeyDates() [5]types.Date {
	return [5]types.Date{s.Notice, s.NoticeEnd, s.ReplyEnd, s.Proposed, s.Final}
}

// AddDays returns the date the given number of calendar days after base.
func AddDays(base types.Date, days int) types.Date {
	return base.AddDays(days)
}

// NextMonday returns the Monday after d, computed as d + (7 - weekday) under
// the Monday=0 convention: a Saturday moves 2 days, a Sunday 1 day.
func NextMonday(d types.Date) types.Date {
	return d.AddDays(7 - d.Weekday())
}

// rollForward moves a weekend date to the following Monday.
func rollForward(d types.Date) types.Date {
	if d.IsWeekend() {
		return NextMonday(d)
	}
	return d
}

// CourtDate computes a hearing date counted from the day after start plus
// totalDays, rolling a weekend result forward to Monday. It returns both the
// originally computed date and the final date. A negative totalDays is a
// no-op returning (start, start).
func CourtDate(start types.Date, totalDays int) (proposed, final types.Date) {
	if totalDays < 0 {
		return start, start
	}
	proposed = start.AddDays(1 + totalDays)
	return proposed, rollForward(proposed)
}

// Schedule builds the full key-date sequence for a hearing: the notice
// period runs from noticeDate, the reply period from its end, and the
// hearing courtDay days after that, rolled forward if it lands on a weekend.
func Schedule(noticeDate types.Date, noticeDays, replyDays, courtDay int) (CourtSchedule, types.Date) {
	noticeEnd := noticeDate.AddDays(noticeDays)
	replyEnd := noticeEnd.AddDays(replyDays)
	proposed := replyEnd.AddDays(courtDay)
	final := rollForward(proposed)
	return CourtSchedule{
		Notice:    noticeDate,
		NoticeEnd: noticeEnd,
		ReplyEnd:  replyEnd,
		Proposed:  proposed,
		Final:     final,
	}, final
}

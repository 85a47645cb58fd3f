package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coolbeans/lexcalc/pkg/docket"
	"github.com/coolbeans/lexcalc/pkg/interval"
)

type addResult struct {
	From   string `json:"from"`
	Days   int    `json:"days"`
	Result string `json:"result"`
}

type courtDateResult struct {
	From     string `json:"from"`
	Days     int    `json:"days"`
	Proposed string `json:"proposed"`
	Final    string `json:"final"`
	Rolled   bool   `json:"rolled"`
}

type scheduleResult struct {
	Notice    string `json:"notice"`
	NoticeEnd string `json:"notice_end"`
	ReplyEnd  string `json:"reply_end"`
	Proposed  string `json:"proposed"`
	Final     string `json:"final"`
	Rolled    bool   `json:"rolled"`
}

type intervalResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Years  int    `json:"years"`
	Months int    `json:"months"`
	Days   int    `json:"days"`
}

func dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Court date arithmetic and scheduling",
	}
	cmd.AddCommand(dateAddCmd())
	cmd.AddCommand(dateCourtCmd())
	cmd.AddCommand(dateScheduleCmd())
	return cmd
}

// presetDays resolves a named day preset from the loaded configuration.
func presetDays(name string) (int, error) {
	switch name {
	case "announcement":
		return presets.Schedule.AnnouncementDays, nil
	case "appeal":
		return presets.Schedule.AppealDays, nil
	case "foreign-judgment":
		return presets.Schedule.ForeignJudgmentDays, nil
	case "":
		return 0, nil
	}
	return 0, fmt.Errorf("unknown preset %q (announcement, appeal, foreign-judgment)", name)
}

func dateAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add calendar days to a date",
		Long: `Add a day count to a base date. --preset fills the day count from
the statutory presets (announcement, appeal, foreign-judgment);
--days overrides it.

Example:
  lexcalc date add --from 2024-06-03 --preset announcement`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := dateFlag(cmd, "from")
			if err != nil {
				return err
			}
			preset, _ := cmd.Flags().GetString("preset")
			days, err := presetDays(preset)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("days") {
				days, _ = cmd.Flags().GetInt("days")
			}

			result := docket.AddDays(base, days)
			out := addResult{From: base.String(), Days: days, Result: result.String()}
			return emit(out, func() {
				fmt.Printf("%s + %d days = %s\n", out.From, out.Days, out.Result)
			})
		},
	}
	cmd.Flags().String("from", "today", "base date (YYYY-MM-DD)")
	cmd.Flags().Int("days", 0, "days to add")
	cmd.Flags().String("preset", "", "named day preset")
	return cmd
}

func dateCourtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "court",
		Short: "Court date counted from the day after a start date",
		Long: `Compute a court date: the day after --from plus --days, rolled
forward to Monday when it lands on a weekend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateFlag(cmd, "from")
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")

			proposed, final := docket.CourtDate(start, days)
			log.WithFields(logrus.Fields{
				"proposed": proposed.String(),
				"weekend":  proposed.IsWeekend(),
			}).Debug("court date computed")

			out := courtDateResult{
				From:     start.String(),
				Days:     days,
				Proposed: proposed.String(),
				Final:    final.String(),
				Rolled:   !proposed.Equal(final),
			}
			return emit(out, func() {
				if out.Rolled {
					fmt.Printf("Court date: %s (weekend, moved to %s)\n", out.Proposed, out.Final)
				} else {
					fmt.Printf("Court date: %s\n", out.Final)
				}
			})
		},
	}
	cmd.Flags().String("from", "today", "start date (YYYY-MM-DD)")
	cmd.Flags().Int("days", 0, "total days counted from the day after the start date")
	return cmd
}

func dateScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Full key-date schedule from notice to hearing",
		Long: `Build the key-date sequence for a hearing: notice period, reply
period and hearing day, with weekend roll-forward on the hearing date.
Unset day counts fall back to the loaded presets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			notice, err := dateFlag(cmd, "notice")
			if err != nil {
				return err
			}

			noticeDays := presets.Schedule.AnnouncementDays
			if cmd.Flags().Changed("notice-days") {
				noticeDays, _ = cmd.Flags().GetInt("notice-days")
			}
			replyDays := presets.Schedule.ReplyDays
			if cmd.Flags().Changed("reply-days") {
				replyDays, _ = cmd.Flags().GetInt("reply-days")
			}
			courtDay, _ := cmd.Flags().GetInt("court-day")

			sched, final := docket.Schedule(notice, noticeDays, replyDays, courtDay)
			out := scheduleResult{
				Notice:    sched.Notice.String(),
				NoticeEnd: sched.NoticeEnd.String(),
				ReplyEnd:  sched.ReplyEnd.String(),
				Proposed:  sched.Proposed.String(),
				Final:     final.String(),
				Rolled:    !sched.Proposed.Equal(final),
			}
			return emit(out, func() {
				fmt.Printf("Notice served:     %s\n", out.Notice)
				fmt.Printf("Notice period end: %s\n", out.NoticeEnd)
				fmt.Printf("Reply period end:  %s\n", out.ReplyEnd)
				if out.Rolled {
					fmt.Printf("Hearing:           %s (weekend, moved to %s)\n", out.Proposed, out.Final)
				} else {
					fmt.Printf("Hearing:           %s\n", out.Final)
				}
			})
		},
	}
	cmd.Flags().String("notice", "today", "notice date (YYYY-MM-DD)")
	cmd.Flags().Int("notice-days", 0, "notice period in days (default from presets)")
	cmd.Flags().Int("reply-days", 0, "reply period in days (default from presets)")
	cmd.Flags().Int("court-day", 0, "days from reply period end to the hearing")
	return cmd
}

func intervalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Exact calendar interval between two dates",
		Long: `Compute the exact (years, months, days) gap between two dates,
walking the real calendar rather than assuming 30-day months.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := dateFlag(cmd, "from")
			if err != nil {
				return err
			}
			to, err := dateFlag(cmd, "to")
			if err != nil {
				return err
			}

			iv := interval.Between(from, to)
			out := intervalResult{
				From:   from.String(),
				To:     to.String(),
				Years:  iv.Years,
				Months: iv.Months,
				Days:   iv.Days,
			}
			return emit(out, func() {
				fmt.Printf("%s to %s: %s\n", out.From, out.To, iv)
			})
		},
	}
	cmd.Flags().String("from", "today", "start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "today", "end date (YYYY-MM-DD)")
	return cmd
}

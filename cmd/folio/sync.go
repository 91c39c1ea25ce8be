package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/store"
)

func syncCmd(a *app) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Load every section at once and print a summary",
		Long: `Load skills, projects, experiences, certifications, the profile and (when
signed in) contact messages concurrently. With --watch, keep running: follow
sign-ins and sign-outs made by other folio processes, print every state change
and reload every --interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				// A failed section is reported in the summary; it does not abort.
				_ = a.store().FetchAll(commandContext(cmd))
				return printSummary(a, a.store().Snapshot())
			}
			return runWatch(cmd, a, interval)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and print state changes")
	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "reload period in watch mode (0 disables)")
	return cmd
}

func runWatch(cmd *cobra.Command, a *app, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := a.store()
	unsubscribe := s.Subscribe(func(action store.Action, st store.State) {
		printAction(a, action, st)
	})
	defer unsubscribe()

	if err := a.client.Watch(ctx); err != nil {
		return err
	}

	a.log.Info().Dur("interval", interval).Msg("watching; press Ctrl+C to stop")

	// Failed reloads are retried sooner, never later than the regular interval.
	failures := 0
	for {
		wait := interval
		if err := s.FetchAll(ctx); err != nil && ctx.Err() == nil {
			failures++
			wait = retryDelay(failures, 2*time.Second, interval)
			a.log.Warn().Err(err).Int("failures", failures).Dur("retry_in", wait).Msg("reload incomplete")
		} else {
			failures = 0
		}
		if interval <= 0 {
			<-ctx.Done()
			break
		}
		if !sleep(ctx, wait) {
			break
		}
	}
	a.log.Info().Msg("stopped")
	return nil
}

var printMu sync.Mutex

type actionLine struct {
	Time   time.Time `json:"time"`
	Action string    `json:"action"`
	Error  string    `json:"error,omitempty"`
	Auth   string    `json:"auth"`
}

// printAction writes one line per dispatched action. Subscribers run on the
// goroutine that completed the action, so lines from a concurrent reload may
// interleave in any order.
func printAction(a *app, action store.Action, st store.State) {
	printMu.Lock()
	defer printMu.Unlock()

	line := actionLine{Time: time.Now(), Action: action.Type, Auth: st.Auth.Status.String()}
	if action.Err != nil {
		line.Error = action.Err.Error()
	}
	if a.jsonOutput() {
		b, err := json.Marshal(line)
		if err == nil {
			fmt.Fprintln(a.out, string(b))
		}
		return
	}
	msg := line.Action
	if line.Error != "" {
		msg += " " + errStyle.Render(line.Error)
	}
	fmt.Fprintf(a.out, "%s %s\n", dimStyle.Render(line.Time.Format(time.TimeOnly)), msg)
}

type sectionSummary struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

func summarize(st store.State) []sectionSummary {
	about := 0
	if st.About.Entity != nil {
		about = 1
	}
	out := []sectionSummary{
		{"skills", len(st.Skills.Items), st.Skills.Error},
		{"projects", len(st.Projects.Items), st.Projects.Error},
		{"experiences", len(st.Experiences.Items), st.Experiences.Error},
		{"certifications", len(st.Certifications.Items), st.Certifications.Error},
		{"about", about, st.About.Error},
	}
	if st.Auth.IsAuthenticated() {
		out = append(out, sectionSummary{"contact", len(st.Contacts.Items), st.Contacts.Error})
	}
	return out
}

func printSummary(a *app, st store.State) error {
	sections := summarize(st)
	if a.jsonOutput() {
		return renderJSON(a.out, sections)
	}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		status := okStyle.Render("ok")
		if s.Error != "" {
			status = errStyle.Render(s.Error)
		}
		rows = append(rows, []string{s.Section, strconv.Itoa(s.Count), status})
	}
	return renderTable(a.out, []string{"Section", "Items", "Status"}, rows)
}

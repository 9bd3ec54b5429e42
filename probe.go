package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/browser"
	"github.com/prawat/portfolio/internal/nav"
)

func newProbeCmd() *cobra.Command {
	var (
		width, height int
		timeout       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "probe <url>",
		Short: "Check in a headless browser that each section becomes active when navigated to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			sess, err := browser.Open(args[0], width, height, timeout)
			if err != nil {
				return err
			}
			defer sess.Close()

			tracker := nav.NewTracker(cfg.Nav.Sections, browser.NewViewport(sess.Page, logger),
				nav.WithActivationOffset(cfg.Nav.ActivationOffset),
				nav.WithLogger(logger))

			out := cmd.OutOrStdout()
			var failed []string
			for _, s := range tracker.Sections() {
				tracker.NavigateTo(s.ID)
				sess.WaitScrollIdle(5 * time.Second)
				got := tracker.OnScroll()
				mark := "ok"
				if got != s.ID {
					mark = "MISMATCH"
					failed = append(failed, s.ID)
				}
				fmt.Fprintf(out, "%-12s %-8s %s\n", s.ID, mark, menuLine(tracker.Items()))
			}
			if len(failed) > 0 {
				logger.Warn("sections not reachable", zap.Strings("sections", failed))
				return fmt.Errorf("%d of %d sections did not become active: %v", len(failed), len(cfg.Nav.Sections), failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 1280, "viewport width")
	cmd.Flags().IntVar(&height, "height", 800, "viewport height")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "page load timeout")
	return cmd
}

// menuLine renders the menu on one line with the active item bracketed.
func menuLine(items []nav.Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Active {
			parts = append(parts, "["+it.ID+"]")
		} else {
			parts = append(parts, it.ID)
		}
	}
	return strings.Join(parts, " ")
}

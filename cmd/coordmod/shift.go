package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/coordmod/pkg/log"
	"github.com/bft-labs/coordmod/plugins/autoshift"
)

func (a *app) tfShiftCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tf-shift",
		Short: "Compute the tool-frame shift from two vision detections",
		Long: `Reads TF[input-tf] and the camera, template and current detection
registers, computes the corrected tool frame and writes it to
TF[result-tf]. Register IDs come from the [shift] config table,
COORDMOD_* variables or the persistent flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out, err := a.handler.TFShift(ctx, a.cfg.Shift)
			if err == nil {
				a.logger.Debug("shift residual",
					log.String("residual", out.Correction.Residual.String()),
					log.String("record", out.RecordID))
			}
			return a.report(out.Message, err)
		},
	}
}

func (a *app) historyCommand() *cobra.Command {
	limit := 10
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent tool-frame shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.journal == nil {
				return errors.New("journal disabled")
			}
			recs, err := a.journal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if a.cfg.JSON {
				return json.NewEncoder(a.out).Encode(recs)
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tID\tIN\tOUT\tRESULT\tRESIDUAL")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\tTF[%d]\tTF[%d]\t%s\t%s\n",
					r.CreatedAt.Local().Format(time.RFC3339), r.ID,
					r.Request.InputTF, r.Request.ResultTF,
					r.Result.Tool.Compact(), r.Result.Residual.String())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", limit, "number of records to list")
	return cmd
}

func (a *app) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run tf-shift whenever the current detection changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			p, pcfg := autoshift.FromConfig(a.cfg, a.mgr, a.handler, a.logger)
			if err := p.Initialize(ctx, pcfg); err != nil {
				return fmt.Errorf("start %s: %w", p.Name(), err)
			}

			select {
			case <-sigCh:
				a.logger.Info("received signal, stopping...")
			case <-ctx.Done():
			}
			cancel()

			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			if err := p.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("stop %s: %w", p.Name(), err)
			}
			a.logger.Info("watch stopped", log.Int("shifts", p.Runs()))
			return nil
		},
	}
	cmd.Flags().DurationVar(&a.cfg.WatchDebounce, "debounce", a.cfg.WatchDebounce, "quiet period before checking the detection")
	return cmd
}

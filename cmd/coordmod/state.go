package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bft-labs/coordmod/internal/adapters/fs"
	"github.com/bft-labs/coordmod/internal/adapters/memory"
	"github.com/bft-labs/coordmod/internal/cliconfig"
	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/pkg/log"
)

func (a *app) initCommand() *cobra.Command {
	var (
		force   bool
		prCount = memory.DefaultPRCount
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a zeroed controller state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cliconfig.FileExists(a.cfg.StateFile) && !force {
				return fmt.Errorf("%s already exists (use --force to replace it)", a.cfg.StateFile)
			}
			if err := fs.Seed(a.cfg.StateFile, memory.NewSeededState(prCount)); err != nil {
				return err
			}
			a.logger.Info("state file created", log.String("path", a.cfg.StateFile), log.Int("prs", prCount))
			return a.report("state file created at "+a.cfg.StateFile, nil)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing state file")
	cmd.Flags().IntVar(&prCount, "prs", prCount, "number of position registers to create")
	return cmd
}

func (a *app) showCommand() *cobra.Command {
	var what string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print frames and registers from the state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := fs.Load(a.cfg.StateFile)
			if err != nil {
				return err
			}
			if a.cfg.JSON {
				return json.NewEncoder(a.out).Encode(state)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			switch what {
			case "tf", "uf":
				frames := state.ToolFrames
				if what == "uf" {
					frames = state.UserFrames
				}
				fmt.Fprintln(tw, "FRAME\tX\tY\tZ\tW\tP\tR\tCOMMENT")
				for _, id := range sortedKeys(frames) {
					f := frames[id]
					p := f.Pose
					fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n", f, p.X, p.Y, p.Z, p.W, p.P, p.R, f.Comment)
				}
			case "pr":
				fmt.Fprintln(tw, "PR\tKIND\tVALUES")
				for _, id := range sortedKeys(state.PR) {
					pr := state.PR[id]
					vals := pr.Joints
					if pr.Kind == domain.Cartesian {
						vals = pr.Pose.List()
					}
					fmt.Fprintf(tw, "PR[%d]\t%s\t%v\n", id, pr.Kind, vals)
				}
			case "r":
				fmt.Fprintln(tw, "R\tVALUE")
				for _, id := range sortedKeys(state.R) {
					fmt.Fprintf(tw, "R[%d]\t%g\n", id, state.R[id])
				}
			case "sr":
				fmt.Fprintln(tw, "SR\tVALUE")
				for _, id := range sortedKeys(state.SR) {
					fmt.Fprintf(tw, "SR[%d]\t%q\n", id, state.SR[id])
				}
			default:
				return fmt.Errorf("unknown table %q (want tf, uf, pr, r or sr)", what)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&what, "table", "tf", "table to print: tf, uf, pr, r or sr")
	return cmd
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/coordmod/internal/commands"
)

func (a *app) stepCommand(name string) *cobra.Command {
	step := commands.DefaultStep
	short := "Add step to a numeric register"
	if name == "decr" {
		short = "Subtract step from a numeric register"
	}
	cmd := &cobra.Command{
		Use:   name + " <r>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rID, err := parseInt("register", args[0])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			if name == "decr" {
				return a.report(a.handler.Decr(ctx, rID, step))
			}
			return a.report(a.handler.Incr(ctx, rID, step))
		},
	}
	cmd.Flags().Float64Var(&step, "step", step, "amount to add or subtract")
	return cmd
}

func (a *app) decToHexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dec-to-hex <r> <sr>",
		Short: "Write R[r] as eight hex digits into SR[sr]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rID, err := parseInt("register", args[0])
			if err != nil {
				return err
			}
			srID, err := parseInt("string register", args[1])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return a.report(a.handler.DecToHex(ctx, rID, srID))
		},
	}
}

func (a *app) strpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strp <sr> <status-r> <pr> <error-r>",
		Short: "Split a vision string into status and position registers",
		Long: `Reads "status,X,Y,C,X,Y,C,..." from SR[sr], writes status into
R[status-r] and each X,Y,C group into PR[pr], PR[pr+1], ... R[error-r]
receives 0 on success and 1 on any failure.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, len(args))
			names := []string{"string register", "status register", "position register", "error register"}
			for i, s := range args {
				v, err := parseInt(names[i], s)
				if err != nil {
					return err
				}
				ids[i] = v
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return a.report(a.handler.Strp(ctx, commands.StrpRequest{
				SR: ids[0], Status: ids[1], PR: ids[2], Error: ids[3],
			}))
		},
	}
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/coordmod/internal/domain"
)

func frameCmdName(kind domain.FrameKind) string {
	return "set-" + strings.ToLower(string(kind))
}

func (a *app) frameValueCommand(kind domain.FrameKind) *cobra.Command {
	return &cobra.Command{
		Use:   frameCmdName(kind) + " <frame> <axis> <value>",
		Short: fmt.Sprintf("Set one axis of %s[frame] to a value", kind),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, pos, err := frameArgs(args)
			if err != nil {
				return err
			}
			v, err := parseFloat("value", args[2])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return a.report(a.handler.SetFrameValue(ctx, kind, id, pos, v))
		},
	}
}

func (a *app) frameFromRCommand(kind domain.FrameKind) *cobra.Command {
	return &cobra.Command{
		Use:   frameCmdName(kind) + "-r <frame> <axis> <r>",
		Short: fmt.Sprintf("Set one axis of %s[frame] from a numeric register", kind),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, pos, err := frameArgs(args)
			if err != nil {
				return err
			}
			rID, err := parseInt("register", args[2])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return a.report(a.handler.SetFrameFromR(ctx, kind, id, pos, rID))
		},
	}
}

func (a *app) frameFromPRCommand(kind domain.FrameKind) *cobra.Command {
	return &cobra.Command{
		Use:   frameCmdName(kind) + "-pr <frame> <pr>",
		Short: fmt.Sprintf("Copy a position register into %s[frame]", kind),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("frame", args[0])
			if err != nil {
				return err
			}
			prID, err := parseInt("position register", args[1])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return a.report(a.handler.SetFrameFromPR(ctx, kind, id, prID))
		},
	}
}

func frameArgs(args []string) (id, pos int, err error) {
	if id, err = parseInt("frame", args[0]); err != nil {
		return 0, 0, err
	}
	if pos, err = parseInt("axis", args[1]); err != nil {
		return 0, 0, err
	}
	return id, pos, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/bft-labs/coordmod/internal/hexconv"
	"github.com/bft-labs/coordmod/pkg/log"
)

// DefaultStep is the Incr and Decr step when none is given.
const DefaultStep = 1.0

// Incr adds step to numeric register rID.
func (h *Handler) Incr(ctx context.Context, rID int, step float64) (string, error) {
	return h.addR(ctx, rID, step, "incremented")
}

// Decr subtracts step from numeric register rID.
func (h *Handler) Decr(ctx context.Context, rID int, step float64) (string, error) {
	return h.addR(ctx, rID, -step, "decremented")
}

func (h *Handler) addR(ctx context.Context, rID int, delta float64, verb string) (string, error) {
	c, err := h.conn.Get(ctx)
	if err != nil {
		return "", err
	}
	cur, err := c.ReadR(ctx, rID)
	if err != nil {
		return "", h.fail(fmt.Errorf("read R[%d]: %w", rID, err))
	}
	next := cur + delta
	if err := c.WriteR(ctx, rID, next); err != nil {
		return "", h.fail(fmt.Errorf("write R[%d]: %w", rID, err))
	}

	h.logger.Debug("register "+verb, log.Int("r", rID), log.Float64("from", cur), log.Float64("to", next))
	step := delta
	if step < 0 {
		step = -step
	}
	return fmt.Sprintf("R[%d] %s by %g: %g -> %g", rID, verb, step, cur, next), nil
}

// DecToHex writes numeric register rID to string register srID as eight
// upper-case hex digits.
func (h *Handler) DecToHex(ctx context.Context, rID, srID int) (string, error) {
	c, err := h.conn.Get(ctx)
	if err != nil {
		return "", err
	}
	v, err := c.ReadR(ctx, rID)
	if err != nil {
		return "", h.fail(fmt.Errorf("read R[%d]: %w", rID, err))
	}
	hex, err := hexconv.Encode(v)
	if err != nil {
		return "", fmt.Errorf("R[%d]: %w", rID, err)
	}
	if err := c.WriteSR(ctx, srID, hex); err != nil {
		return "", h.fail(fmt.Errorf("write SR[%d]: %w", srID, err))
	}

	h.logger.Debug("register converted", log.Int("r", rID), log.Int("sr", srID), log.String("hex", hex))
	return fmt.Sprintf("R[%d]=%g written to SR[%d] as %s", rID, v, srID, hex), nil
}

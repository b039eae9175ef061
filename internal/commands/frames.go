package commands

import (
	"context"
	"fmt"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/pkg/geometry"
	"github.com/bft-labs/coordmod/pkg/log"
)

func validateFrame(kind domain.FrameKind, id int) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown frame kind %q", kind)
	}
	return domain.ValidateFrameID(id)
}

// SetFrameValue sets one component of a tool or user frame to value, rounded
// to three decimals.
func (h *Handler) SetFrameValue(ctx context.Context, kind domain.FrameKind, id, pos int, value float64) (string, error) {
	if err := validateFrame(kind, id); err != nil {
		return "", err
	}
	axis, err := domain.ParseAxis(pos)
	if err != nil {
		return "", err
	}

	c, err := h.conn.Get(ctx)
	if err != nil {
		return "", err
	}
	v, err := h.setAxis(ctx, c, kind, id, axis, value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%d] %s set to %g", kind, id, axis, v), nil
}

// SetFrameFromR sets one component of a frame from numeric register rID.
// The register is read before the frame.
func (h *Handler) SetFrameFromR(ctx context.Context, kind domain.FrameKind, id, pos, rID int) (string, error) {
	if err := validateFrame(kind, id); err != nil {
		return "", err
	}
	axis, err := domain.ParseAxis(pos)
	if err != nil {
		return "", err
	}

	c, err := h.conn.Get(ctx)
	if err != nil {
		return "", err
	}
	r, err := c.ReadR(ctx, rID)
	if err != nil {
		return "", h.fail(fmt.Errorf("read R[%d]: %w", rID, err))
	}
	v, err := h.setAxis(ctx, c, kind, id, axis, r)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%d] %s set to %g from R[%d]", kind, id, axis, v, rID), nil
}

func (h *Handler) setAxis(ctx context.Context, c ports.FrameStore, kind domain.FrameKind, id int, axis domain.Axis, value float64) (float64, error) {
	f, err := c.Frame(ctx, kind, id)
	if err != nil {
		return 0, h.fail(fmt.Errorf("read %s[%d]: %w", kind, id, err))
	}

	v := domain.Round3(value)
	f.Pose = f.Pose.With(axis.Component(), v)
	if err := c.UpdateFrame(ctx, f); err != nil {
		return 0, h.fail(fmt.Errorf("update %s: %w", f, err))
	}

	h.logger.Info("frame updated", log.String("frame", f.String()), log.String("axis", axis.String()), log.Float64("value", v))
	return v, nil
}

// SetFrameFromPR copies a Cartesian position register into a frame, every
// component rounded to three decimals.
func (h *Handler) SetFrameFromPR(ctx context.Context, kind domain.FrameKind, id, prID int) (string, error) {
	if err := validateFrame(kind, id); err != nil {
		return "", err
	}

	c, err := h.conn.Get(ctx)
	if err != nil {
		return "", err
	}
	pr, err := c.ReadPR(ctx, prID)
	if err != nil {
		return "", h.fail(fmt.Errorf("read PR[%d]: %w", prID, err))
	}
	pose, err := pr.CartesianPose()
	if err != nil {
		return "", err
	}

	f, err := c.Frame(ctx, kind, id)
	if err != nil {
		return "", h.fail(fmt.Errorf("read %s[%d]: %w", kind, id, err))
	}
	// List is always six long.
	f.Pose, _ = geometry.PoseFromList(domain.RoundPose(pose.List()))
	if err := c.UpdateFrame(ctx, f); err != nil {
		return "", h.fail(fmt.Errorf("update %s: %w", f, err))
	}

	h.logger.Info("frame updated from PR", log.String("frame", f.String()), log.Int("pr", prID), poseField("pose", f.Pose))
	return fmt.Sprintf("%s[%d] set from PR[%d]: %s", kind, id, prID, poseMessage(f.Pose, "%g")), nil
}

func poseMessage(p geometry.Pose, verb string) string {
	f := "X=" + verb + ", Y=" + verb + ", Z=" + verb + ", A=" + verb + ", B=" + verb + ", C=" + verb
	return fmt.Sprintf(f, p.X, p.Y, p.Z, p.W, p.P, p.R)
}

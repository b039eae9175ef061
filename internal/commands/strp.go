package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/internal/textparse"
	"github.com/bft-labs/coordmod/pkg/log"
)

// Error flag values written by Strp.
const (
	flagOK    = 0
	flagError = 1
)

// StrpRequest names the registers Strp reads and writes.
type StrpRequest struct {
	// SR holds the vision string: status, then X,Y,C groups.
	SR int
	// Status receives the material status.
	Status int
	// PR is the first of the consecutive position registers filled.
	PR int
	// Error receives 0 on success and 1 on any failure.
	Error int
}

// Strp decodes the vision string in SR and writes each X,Y,C group into
// PR, PR+1, ... keeping their Z, A and B. Once the string has been read,
// every failure leaves 1 in the error flag register.
func (h *Handler) Strp(ctx context.Context, req StrpRequest) (string, error) {
	c, err := h.conn.Get(ctx)
	if err != nil {
		return "", err
	}
	s, err := c.ReadSR(ctx, req.SR)
	if err != nil {
		return "", h.fail(fmt.Errorf("read SR[%d]: %w", req.SR, err))
	}

	fields := textparse.Fields(s)
	if len(fields) == 0 {
		h.writeFlags(ctx, c, req, 0, true)
		return "", fmt.Errorf("SR[%d]: %w", req.SR, textparse.ErrEmpty)
	}

	status, err := textparse.ParseStatus(fields[0])
	if err != nil {
		h.writeFlags(ctx, c, req, 0, true)
		return "", fmt.Errorf("SR[%d]: %w", req.SR, err)
	}
	h.writeFlags(ctx, c, req, status, false)

	if status == 0 {
		h.writeFlag(ctx, c, req.Error, flagError)
		return "", fmt.Errorf("SR[%d]: %w", req.SR, domain.ErrNoMaterial)
	}
	if len(fields) < 2 {
		h.writeFlag(ctx, c, req.Error, flagError)
		return "", fmt.Errorf("SR[%d]: status only: %w", req.SR, textparse.ErrEmpty)
	}

	groups, err := textparse.ParseGroups(fields[1:])
	if err != nil {
		h.writeFlag(ctx, c, req.Error, flagError)
		return "", fmt.Errorf("SR[%d]: %w", req.SR, err)
	}
	h.writeFlag(ctx, c, req.Error, flagOK)

	written := make([]string, 0, len(groups))
	for i, g := range groups {
		id := req.PR + i
		if err := h.writeGroup(ctx, c, id, g); err != nil {
			h.writeFlag(ctx, c, req.Error, flagError)
			return "", h.fail(err)
		}
		written = append(written, fmt.Sprintf("PR[%d]", id))
	}

	h.logger.Info("vision data split",
		log.Int("sr", req.SR), log.Int("status", status), log.Int("groups", len(groups)),
		log.String("delimiter", textparse.DetectDelimiter(s)))
	return fmt.Sprintf("split %d values (%d groups) into %s, status=%d, error=0",
		len(groups)*3, len(groups), strings.Join(written, ", "), status), nil
}

func (h *Handler) writeGroup(ctx context.Context, c ports.RegisterStore, id int, g textparse.Group) error {
	pr, err := c.ReadPR(ctx, id)
	if err != nil {
		return fmt.Errorf("read PR[%d]: %w", id, err)
	}
	if _, err := pr.CartesianPose(); err != nil {
		return err
	}

	pr.Pose.X = domain.Round3(g.X)
	pr.Pose.Y = domain.Round3(g.Y)
	pr.Pose.R = domain.Round3(g.C)
	if err := c.WritePR(ctx, pr); err != nil {
		return fmt.Errorf("write PR[%d]: %w", id, err)
	}
	return nil
}

// writeFlags writes the status register and, when failed, the error flag.
func (h *Handler) writeFlags(ctx context.Context, c ports.RegisterStore, req StrpRequest, status int, failed bool) {
	h.writeFlag(ctx, c, req.Status, status)
	if failed {
		h.writeFlag(ctx, c, req.Error, flagError)
	}
}

// writeFlag is best effort: the caller is already reporting the primary
// outcome.
func (h *Handler) writeFlag(ctx context.Context, c ports.RegisterStore, rID, v int) {
	if err := c.WriteR(ctx, rID, float64(v)); err != nil {
		_ = h.fail(err)
		h.logger.Warn("flag register write failed", log.Int("r", rID), log.Int("value", v), log.Err(err))
	}
}

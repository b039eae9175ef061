package commands

import (
	"context"
	"fmt"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/pkg/geometry"
	"github.com/bft-labs/coordmod/pkg/log"
)

// TFShift computes the corrected tool frame from the tool frame InputTF and
// the camera, reference and detected poses in CamPose, RefVis and ActVis,
// then writes it unrounded to tool frame ResultTF. All four inputs are read
// before anything is computed or written.
func (h *Handler) TFShift(ctx context.Context, req domain.ShiftRequest) (domain.ShiftOutcome, error) {
	if err := req.Validate(); err != nil {
		return domain.ShiftOutcome{}, err
	}

	c, err := h.conn.Get(ctx)
	if err != nil {
		return domain.ShiftOutcome{}, err
	}
	in, err := h.readShiftInputs(ctx, c, req)
	if err != nil {
		return domain.ShiftOutcome{}, h.fail(err)
	}

	corr := geometry.Correct(in)
	h.logger.Info("tool frame shift residual",
		log.String("residual", corr.Residual.String()),
		log.Float64("dx", corr.Residual.DX),
		log.Float64("dy", corr.Residual.DY),
		log.Float64("dr", corr.Residual.DR))

	out := domain.ShiftOutcome{Request: req, Inputs: in, Correction: corr}

	f, err := c.Frame(ctx, domain.ToolFrame, req.ResultTF)
	if err != nil {
		return out, h.fail(fmt.Errorf("read TF[%d]: %w", req.ResultTF, err))
	}
	f.Pose = corr.Tool
	if err := c.UpdateFrame(ctx, f); err != nil {
		return out, h.fail(fmt.Errorf("update TF[%d]: %w", req.ResultTF, err))
	}

	out.RecordID = h.record(ctx, req, in, corr)
	out.Message = fmt.Sprintf("tool frame shift written to TF[%d]: %s", req.ResultTF, poseMessage(corr.Tool, "%.6f"))
	h.logger.Info("tool frame shifted", log.Int("tf", req.ResultTF), poseField("pose", corr.Tool))
	return out, nil
}

func (h *Handler) readShiftInputs(ctx context.Context, c ports.Controller, req domain.ShiftRequest) (geometry.Inputs, error) {
	var in geometry.Inputs

	tf, err := c.Frame(ctx, domain.ToolFrame, req.InputTF)
	if err != nil {
		return in, fmt.Errorf("read TF[%d]: %w", req.InputTF, err)
	}
	in.ToolInBase = tf.Pose

	for _, r := range []struct {
		id  int
		dst *geometry.Pose
	}{
		{req.CamPose, &in.CameraInUser},
		{req.RefVis, &in.ReferenceInUser},
		{req.ActVis, &in.ActualInUser},
	} {
		pr, err := c.ReadPR(ctx, r.id)
		if err != nil {
			return in, fmt.Errorf("read PR[%d]: %w", r.id, err)
		}
		if *r.dst, err = pr.CartesianPose(); err != nil {
			return in, err
		}
	}
	return in, nil
}

// record journals the shift. A journal failure is logged, never returned.
func (h *Handler) record(ctx context.Context, req domain.ShiftRequest, in geometry.Inputs, corr geometry.Correction) string {
	if h.journal == nil {
		return ""
	}
	rec := domain.CorrectionRecord{
		ID:        h.newID(),
		CreatedAt: h.now(),
		Request:   req,
		Inputs:    in,
		Result:    corr,
	}
	if err := h.journal.Record(ctx, rec); err != nil {
		h.logger.Warn("journal write failed", log.String("id", rec.ID), log.Err(err))
		return ""
	}
	return rec.ID
}

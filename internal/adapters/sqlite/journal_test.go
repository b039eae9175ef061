package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/pkg/geometry"
)

func record(id string, at time.Time, dx float64) domain.CorrectionRecord {
	in := geometry.Inputs{
		CameraInUser:    geometry.NewPose(100, 0, 0, 0, 0, 0),
		ReferenceInUser: geometry.NewPose(150, 0, 0, 0, 0, 0),
		ActualInUser:    geometry.NewPose(160, 10, 0, 0, 0, 0),
	}
	res := geometry.Correct(in)
	res.Residual.DX = dx
	return domain.CorrectionRecord{
		ID:        id,
		CreatedAt: at,
		Request:   domain.DefaultShiftRequest(),
		Inputs:    in,
		Result:    res,
	}
}

func TestJournal_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"), nil)
	require.NoError(t, err)
	defer j.Close()

	v, err := j.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := record("a", base, 1e-13)
	second := record("b", base.Add(time.Second), 2e-13)
	require.NoError(t, j.Record(ctx, first))
	require.NoError(t, j.Record(ctx, second))

	got, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	if diff := cmp.Diff([]domain.CorrectionRecord{second, first}, got); diff != "" {
		t.Errorf("Recent mismatch (-want +got):\n%s", diff)
	}

	got, err = j.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestJournal_DuplicateID(t *testing.T) {
	ctx := context.Background()
	j, err := Open(":memory:", nil)
	require.NoError(t, err)
	defer j.Close()

	rec := record("dup", time.Now().UTC(), 0)
	require.NoError(t, j.Record(ctx, rec))
	assert.Error(t, j.Record(ctx, rec))
}

func TestJournal_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, j.Record(ctx, record("x", time.Now().UTC(), 0)))
	require.NoError(t, j.Close())

	j, err = Open(path, nil)
	require.NoError(t, err)
	defer j.Close()

	got, err := j.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

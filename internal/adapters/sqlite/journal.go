// Package sqlite provides a correction journal stored in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/pkg/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Journal implements ports.Journal on SQLite.
type Journal struct {
	db     *sql.DB
	logger log.Logger
}

// Open opens (creating if needed) the journal at path and migrates it to the
// latest schema. Use ":memory:" for a throwaway journal.
func Open(path string, logger log.Logger) (*Journal, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	j := &Journal{db: db, logger: logger}
	if err := j.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(j.db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = &migrateLogger{logger: j.logger}
	return m, nil
}

// migrateUp runs all pending migrations. The migrate instance is not closed
// because that would close the shared *sql.DB.
func (j *Journal) migrateUp() error {
	m, err := j.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Version returns the applied schema version.
func (j *Journal) Version() (uint, error) {
	m, err := j.newMigrate()
	if err != nil {
		return 0, err
	}
	v, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return v, err
}

// Record implements ports.Journal.
func (j *Journal) Record(ctx context.Context, rec domain.CorrectionRecord) error {
	inputs, err := json.Marshal(rec.Inputs)
	if err != nil {
		return err
	}
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return err
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO corrections
			(id, created_at, input_tf, result_tf, cam_pose, ref_vis, act_vis, inputs, result, residual_max)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Request.InputTF, rec.Request.ResultTF, rec.Request.CamPose, rec.Request.RefVis, rec.Request.ActVis,
		string(inputs), string(result), rec.Result.Residual.Max(),
	)
	if err != nil {
		return fmt.Errorf("record correction %s: %w", rec.ID, err)
	}
	return nil
}

// Recent implements ports.Journal.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.CorrectionRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, created_at, input_tf, result_tf, cam_pose, ref_vis, act_vis, inputs, result
		FROM corrections
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CorrectionRecord
	for rows.Next() {
		var (
			rec            domain.CorrectionRecord
			created        string
			inputs, result string
		)
		if err := rows.Scan(&rec.ID, &created,
			&rec.Request.InputTF, &rec.Request.ResultTF, &rec.Request.CamPose, &rec.Request.RefVis, &rec.Request.ActVis,
			&inputs, &result); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("correction %s: bad timestamp: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(inputs), &rec.Inputs); err != nil {
			return nil, fmt.Errorf("correction %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(result), &rec.Result); err != nil {
			return nil, fmt.Errorf("correction %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

type migrateLogger struct {
	logger log.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), log.String("component", "migrate"))
}

func (l *migrateLogger) Verbose() bool {
	return false
}

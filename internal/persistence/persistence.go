// Package persistence durably stores and retrieves an agent's affective
// state as a single JSON file per agent under a fixed directory
// convention (<dir>/<agentID>/agent/emotion-engine.json), guarding
// concurrent writers with a lock file and guaranteeing a reader never
// observes a partial write.
package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"emotion-engine/internal/domain"
)

// fileMode is the permission new state and lock files are created with.
const fileMode = 0o644

// Save atomically persists state to <dir>/<agentID>/agent/emotion-engine.json:
// it writes to a temp file in that same directory, then renames over the
// destination, so a reader never observes a half-written file and a
// crash mid-write leaves the previous version intact.
func Save(dir, agentID string, state domain.State) error {
	adir := agentDir(dir, agentID)
	if err := os.MkdirAll(adir, 0o755); err != nil {
		return domain.NewIOError("create agent state directory", err)
	}

	dest := statePath(dir, agentID)
	tmp, err := os.CreateTemp(adir, "emotion-engine.*.tmp")
	if err != nil {
		return domain.NewIOError("create temp state file", err)
	}
	tmpPath := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return domain.NewIOError("encode state", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return domain.NewIOError("sync temp state file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return domain.NewIOError("close temp state file", err)
	}
	if err := os.Chmod(tmpPath, fileMode); err != nil {
		os.Remove(tmpPath)
		return domain.NewIOError("chmod temp state file", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return domain.NewIOError("rename state file into place", err)
	}
	return nil
}

// Load reads and decodes <dir>/<agentID>/agent/emotion-engine.json,
// migrating a v1 payload to the current schema in memory before
// returning it. A missing file is reported via os.IsNotExist on the
// returned error's cause, so callers can distinguish "first run" from an
// actual read failure. Malformed JSON or an unsupported version yields a
// SchemaError; callers that want the spec's silent-fallback-to-default
// recovery policy for that case (rather than a bare read failure) apply
// it themselves, since Load has no default personality to fall back to.
func Load(dir, agentID string) (domain.State, error) {
	raw, err := os.ReadFile(statePath(dir, agentID))
	if err != nil {
		return domain.State{}, domain.NewIOError("read state file", err)
	}

	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return domain.State{}, domain.NewSchemaError("parse state version", err)
	}

	switch probe.Version {
	case domain.CurrentVersion:
		var state domain.State
		if err := json.Unmarshal(raw, &state); err != nil {
			return domain.State{}, domain.NewSchemaError("decode current-version state", err)
		}
		return state, nil
	case 1, 0:
		return MigrateV1(raw)
	default:
		return domain.State{}, domain.NewSchemaError("unsupported state version", nil)
	}
}

// Exists reports whether a state file is already on disk for agentID.
func Exists(dir, agentID string) bool {
	_, err := os.Stat(statePath(dir, agentID))
	return err == nil
}

// agentDir is the per-agent directory an agent's state file (and its
// temp files during a save) live under.
func agentDir(dir, agentID string) string {
	return filepath.Join(dir, agentID, "agent")
}

func statePath(dir, agentID string) string {
	return filepath.Join(agentDir(dir, agentID), "emotion-engine.json")
}

// lockSuffix names an agent's lock file, <dir>/<agentID>.lock. The lock
// sits next to the agent's directory, not inside it beside the state file.
const lockSuffix = ".lock"

// DefaultLockStaleTimeout is how old an existing lock file must be before
// it's considered abandoned by a crashed process and safe to reclaim.
const DefaultLockStaleTimeout = 10 * time.Second

// AcquireLock creates an exclusive lock file for agentID. If a lock
// already exists and is younger than staleTimeout, it returns an IOError.
// If the existing lock is older than staleTimeout, it's removed once and
// acquisition is retried exactly once.
func AcquireLock(dir, agentID string, staleTimeout time.Duration) (release func() error, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.NewIOError("create state directory", err)
	}
	path := filepath.Join(dir, agentID+lockSuffix)

	release, err = tryLock(path)
	if err == nil {
		return release, nil
	}

	info, statErr := os.Stat(path)
	if statErr != nil || time.Since(info.ModTime()) < staleTimeout {
		return nil, domain.NewIOError("state is locked by another process", err)
	}

	if rmErr := os.Remove(path); rmErr != nil {
		return nil, domain.NewIOError("remove stale lock", rmErr)
	}
	release, err = tryLock(path)
	if err != nil {
		return nil, domain.NewIOError("acquire lock after clearing stale lock", err)
	}
	return release, nil
}

func tryLock(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, err
	}
	f.Close()
	return func() error {
		return os.Remove(path)
	}, nil
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/davidpereyra2016/cv-generador/internal/config"
	"github.com/davidpereyra2016/cv-generador/internal/cv"
)

// ErrNotFound indicates that no submission exists for the given id.
var ErrNotFound = errors.New("submission not found")

// Store persists in-flight form submissions as one JSON file per id,
// bridging the hosted-checkout redirect back to the original form data.
// Each file is written once and read at most once before deletion, so no
// locking is needed.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates the store rooted at cfg.Dir, creating the directory when
// missing. An empty Dir selects a process-temporary directory for
// ephemeral deployments.
func New(cfg config.StoreConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		tmp, err := os.MkdirTemp("", "cv_pending_")
		if err != nil {
			return nil, fmt.Errorf("create temp submission dir: %w", err)
		}
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create submission dir %q: %w", dir, err)
	}

	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Save serializes the submission under a freshly generated id and returns
// that id. UUIDs make collision handling unnecessary.
func (s *Store) Save(sub *cv.Submission) (string, error) {
	data, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("marshal submission: %w", err)
	}

	id := uuid.NewString()
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return "", fmt.Errorf("write submission %q: %w", id, err)
	}
	return id, nil
}

// Load reads the submission stored under id. Returns ErrNotFound when the
// id is unknown, malformed, or the file is already gone.
func (s *Store) Load(id string) (*cv.Submission, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read submission %q: %w", id, err)
	}

	var sub cv.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("decode submission %q: %w", id, err)
	}
	return &sub, nil
}

// Delete removes the stored file. Best-effort: failures are logged, never
// propagated, and a missing file counts as success.
func (s *Store) Delete(id string) {
	if !validID(id) {
		return
	}
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("delete stored submission failed",
			slog.String("form_id", id),
			slog.Any("error", err),
		)
	}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// validID rejects ids that are not plain UUID strings, which also keeps
// path traversal out of the storage directory.
func validID(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

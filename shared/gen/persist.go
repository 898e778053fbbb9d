package gen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lft-ai/lftgen/shared/lfterr"
)

// GenerateAndPersist runs Generate and writes the sanitized code to path.
// Returns the path written.
func (s *Service) GenerateAndPersist(ctx context.Context, description, path string) (string, error) {
	art, err := s.Generate(ctx, description)
	if err != nil {
		return "", err
	}
	return s.Persist(art, path)
}

// Persist writes an artifact's sanitized code to path, creating missing
// parent directories and overwriting any existing file. The write goes
// through a same-directory temp file renamed into place, so a failed
// write leaves no partial file behind. Single writer assumed; no
// cross-process locking.
func (s *Service) Persist(art Artifact, path string) (string, error) {
	if err := writeAtomic(path, []byte(art.Code)); err != nil {
		return "", lfterr.Wrap(lfterr.KindGeneration,
			lfterr.Wrap(lfterr.KindPersistence, err, "save topology to %s", path),
			"generate topology")
	}
	s.log.Info().Str("path", path).Msg("topology saved")
	return path, nil
}

func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".topology-*")
	if err != nil {
		return err
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return err
	}
	tmp = nil
	return nil
}

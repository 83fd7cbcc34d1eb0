package database

import (
	"fmt"
	"os"
	"path/filepath"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
)

const probeFileName = ".write_probe"

// ResolveStorageDir returns the first candidate directory that exists or can
// be created and accepts a probe file. The current directory is the last resort.
func ResolveStorageDir(candidates []string, logger coreport.Logger) (string, error) {
	tried := append(append([]string{}, candidates...), ".")

	for _, dir := range tried {
		if dir == "" {
			continue
		}
		if err := probeDir(dir); err != nil {
			logger.Debug("Storage candidate rejected", map[string]any{
				"dir":   dir,
				"error": err.Error(),
			})
			continue
		}

		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = dir
		}
		logger.Info("Storage directory resolved", map[string]any{"dir": abs})
		return abs, nil
	}

	return "", fmt.Errorf("no writable storage directory among %v", tried)
}

func probeDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, probeFileName)
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return err
	}
	return os.Remove(probe)
}

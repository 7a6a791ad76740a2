package cli

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// hashFileXX hashes a file's contents with XXH64, generalizing the
// teacher's per-image-file skip-unchanged cache to a per-archive cache
// keyed on the input file's content rather than a directory's worth of
// images.
func hashFileXX(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("hash %q: %w", path, err)
	}

	return h.Sum64(), nil
}

// readCacheHash reads a previously written 8-byte cache hash, reporting
// (0, false, nil) when the cache file does not exist yet.
func readCacheHash(path string) (uint64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read cache %q: %w", path, err)
	}
	if len(data) != 8 {
		return 0, false, nil
	}
	return binary.LittleEndian.Uint64(data), true, nil
}

// writeCacheHash persists the 8-byte cache hash.
func writeCacheHash(path string, hash uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, hash)
	if err := os.WriteFile(path, buf, 0600); err != nil {
		return fmt.Errorf("write cache %q: %w", path, err)
	}
	return nil
}

// shouldSkipJob reports whether a batch job can be skipped because its
// input is unchanged since the last run and its output still exists.
func shouldSkipJob(cachePath, outputPath string, nextHash uint64) bool {
	prevHash, ok, err := readCacheHash(cachePath)
	if err != nil || !ok || prevHash != nextHash {
		return false
	}
	_, err = os.Stat(outputPath)
	return err == nil
}

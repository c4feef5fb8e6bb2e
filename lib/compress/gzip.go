package compress

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/common"
	"github.com/klauspost/compress/gzip"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var Logger = logger.GetLogger(common.LoggerCompress)

// Extension is appended to the path of every compressed artifact
const Extension = ".gz"

// GzipFile compresses the file at path into path + Extension and returns the new path
func GzipFile(path string) (gzPath string, err error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	gzPath = path + Extension
	out, err := os.Create(gzPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", gzPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", gzPath, cerr)
		}
	}()

	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return "", err
	}
	zw.Name = filepath.Base(path)
	zw.ModTime = info.ModTime()

	if _, err = io.Copy(zw, in); err != nil {
		return "", fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err = zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish %s: %w", gzPath, err)
	}
	return gzPath, nil
}

// Gunzip reads and decompresses the file at path
func Gunzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read gzip header of %s: %w", path, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return data, nil
}

// RemoveStale deletes every <prefix>.*.gz file in dir and returns the removed paths.
// dir is taken literally, glob metacharacters in it have no special meaning.
func RemoveStale(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	removed := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isStale(entry.Name(), prefix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		Logger.Infof("removed stale %s", path)
		removed = append(removed, path)
	}
	return removed, nil
}

// isStale reports whether name matches <prefix>.*.gz
func isStale(name, prefix string) bool {
	head := prefix + "."
	return len(name) >= len(head)+len(Extension) &&
		strings.HasPrefix(name, head) &&
		strings.HasSuffix(name, Extension)
}

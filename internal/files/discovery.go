package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "bizdash/internal/errors"
)

// FileInfo represents information about a discovered workbook
type FileInfo struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// Discovery provides workbook discovery rooted at a source directory
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// IsWorkbook reports whether name carries a spreadsheet extension
func IsWorkbook(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

func (d *Discovery) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.basePath, path)
}

// FindWorkbooks lists the workbooks directly under the base path, sorted by
// name. Office lock files ("~$name.xlsx") are skipped.
func (d *Discovery) FindWorkbooks() ([]FileInfo, error) {
	entries, err := os.ReadDir(d.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", d.basePath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsWorkbook(name) || strings.HasPrefix(name, "~$") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(d.basePath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// Preflight checks that every path is an existing, non-empty workbook.
// Missing files yield a NOT_FOUND error listing all of them; otherwise any
// unusable file yields a CONFIG error.
func (d *Discovery) Preflight(paths []string) error {
	var missing, unusable []string

	for _, p := range paths {
		full := d.resolve(p)
		if !IsWorkbook(full) {
			unusable = append(unusable, full)
			continue
		}

		info, err := os.Stat(full)
		switch {
		case os.IsNotExist(err):
			missing = append(missing, full)
		case err != nil:
			unusable = append(unusable, full)
		case info.IsDir() || info.Size() == 0:
			unusable = append(unusable, full)
		}
	}

	if len(missing) > 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%d source workbook(s)", len(missing))).
			WithContext("missing", missing)
	}
	if len(unusable) > 0 {
		return apperrors.NewConfigError(fmt.Sprintf("%d source(s) are not readable workbooks", len(unusable)), nil).
			WithContext("unusable", unusable)
	}
	return nil
}

// Unreferenced returns the workbooks of the base path that none of paths
// points to. A missing base path yields no files.
func (d *Discovery) Unreferenced(paths []string) ([]FileInfo, error) {
	if _, err := os.Stat(d.basePath); os.IsNotExist(err) {
		return nil, nil
	}

	found, err := d.FindWorkbooks()
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		referenced[filepath.Clean(d.resolve(p))] = struct{}{}
	}

	var out []FileInfo
	for _, f := range found {
		if _, ok := referenced[filepath.Clean(f.Path)]; !ok {
			out = append(out, f)
		}
	}
	return out, nil
}

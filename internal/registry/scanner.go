package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"priced/internal/common/fsutil"
	"priced/pkg/types"
)

// metadataSuffix pairs an artifact <name>.<ext> with <name>_metadata.json.
const metadataSuffix = "_metadata.json"

// Scan lists model artifacts (*.json, *.gob) in dir, newest first. Each
// artifact is paired with its metadata sidecar when one exists. Sidecars
// themselves are excluded from the listing. A leading '~' in dir is expanded.
func Scan(dir string) ([]types.ModelFile, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		// A models dir that does not exist yet is an empty listing, not an error.
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.ModelFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !isArtifact(name) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		mf := types.ModelFile{
			Filename: name,
			Path:     filepath.Join(abs, name),
			Size:     fi.Size(),
			Modified: fi.ModTime().Format("2006-01-02 15:04:05"),
		}
		sidecar := filepath.Join(abs, sidecarName(name))
		if fsutil.PathExists(sidecar) {
			mf.MetadataPath = sidecar
		}
		models = append(models, mf)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Modified > models[j].Modified })
	return models, nil
}

func isArtifact(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, metadataSuffix) {
		return false
	}
	return strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".gob")
}

func sidecarName(artifact string) string {
	base := strings.TrimSuffix(artifact, filepath.Ext(artifact))
	return base + metadataSuffix
}

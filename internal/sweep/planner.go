package sweep

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DimensionLabel names the sweep dimension in the output tree.
	DimensionLabel = "full"

	// PointPrefix prefixes each thread-count directory, e.g. t17.
	PointPrefix = "t"
)

// OutputRelDir returns the output directory for one (species, threads)
// point, relative to the output root: species/full/t<N>. The components
// contain no path separators beyond the two joins.
func OutputRelDir(species string, threads int) string {
	return filepath.Join(species, DimensionLabel, fmt.Sprintf("%s%d", PointPrefix, threads))
}

// PlanOutputDir computes the absolute output directory for one sweep point
// and creates it together with any missing ancestors. Re-planning an
// existing directory is a no-op.
func PlanOutputDir(root, species string, threads int) (string, error) {
	dir := filepath.Join(root, OutputRelDir(species, threads))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return dir, nil
}

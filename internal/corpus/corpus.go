// Package corpus loads the YAML fixture of known-good perft node counts
// consumed by perft's table-driven tests, instead of hardcoding the
// reference positions in Go source.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one reference perft fixture: a FEN position, a search depth, and
// the known-correct leaf node count at that depth.
type Case struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
	Nodes uint64 `yaml:"nodes"`
}

// Load reads a YAML file of perft fixtures from path.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("corpus: parsing %s: %w", path, err)
	}
	return cases, nil
}

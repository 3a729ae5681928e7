package filesystem

import (
	"github.com/taigrr/treeops/internal/predicate"
	"github.com/taigrr/treeops/internal/types"
	"github.com/taigrr/treeops/internal/walk"
)

// Find returns the files below dir that satisfy f, in walk order.
// Directories are never returned. An empty filter returns every file.
func (s *Service) Find(dir string, f types.Filter) ([]string, error) {
	results := []string{}
	eval := predicate.New(f)

	for entry, err := range walk.All(dir) {
		if err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		if eval.Matches(entry.Path) {
			results = append(results, entry.Path)
		}
	}

	return results, nil
}

package walker

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreStack tracks .gitignore rules as the walk descends into directories.
// Each layer corresponds to one directory; layers with no .gitignore carry a
// nil parser so push/pop stay balanced.
type ignoreStack struct {
	layers []ignoreLayer
}

type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

// push loads the .gitignore of dir (if any) onto the stack.
func (s *ignoreStack) push(dir string) {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		parser = nil
	}
	s.layers = append(s.layers, ignoreLayer{dir: dir, parser: parser})
}

func (s *ignoreStack) pop() {
	if len(s.layers) > 0 {
		s.layers = s.layers[:len(s.layers)-1]
	}
}

// isIgnored checks fullPath against every active layer, innermost last.
// Directory paths are checked with a trailing slash so "dir/" rules apply.
func (s *ignoreStack) isIgnored(fullPath string, isDir bool) bool {
	for _, layer := range s.layers {
		if layer.parser == nil {
			continue
		}
		rel, err := filepath.Rel(layer.dir, fullPath)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if layer.parser.MatchesPath(rel) {
			return true
		}
	}
	return false
}

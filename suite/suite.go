// Package suite loads collections of entailments with expected verdicts and
// proves them in batch.
//
// A suite is either a YAML file
//
//	name: basics
//	cases:
//	  - name: two-cell list
//	    entailment: "And[Neq(x,y)]|SepConj[x->y,y->Nil] |- True|SepConj[ls(x,Nil)]"
//	    expect: valid
//
// or a plain text file with one entailment per line, each expected to be
// valid. Blank lines and lines starting with '#' are skipped.
package suite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gnoverse/alice/internal/prover"
)

// Case is a single entailment with its expected verdict.
type Case struct {
	Name       string         `yaml:"name"`
	Entailment string         `yaml:"entailment"`
	Expect     prover.Verdict `yaml:"expect"`
}

// Suite is a named list of cases loaded from one file.
type Suite struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"-"`
	Cases []Case `yaml:"cases"`
}

var desiredExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".txt":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// Load reads the suite file at path.
func Load(path string) (*Suite, error) {
	var (
		s   *Suite
		err error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		s, err = loadYAML(path)
	case ".txt":
		s, err = loadText(path)
	default:
		return nil, fmt.Errorf("%s: unsupported suite format", path)
	}
	if err != nil {
		return nil, err
	}

	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func loadYAML(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Suite
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

func loadText(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Suite
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Cases = append(s.Cases, Case{
			Name:       fmt.Sprintf("line %d", lineNo),
			Entailment: line,
			Expect:     prover.Valid,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// normalize fills in defaults and rejects malformed cases.
func (s *Suite) normalize() error {
	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true

		if strings.TrimSpace(c.Entailment) == "" {
			return fmt.Errorf("case %q has no entailment", c.Name)
		}
		switch c.Expect {
		case 0:
			c.Expect = prover.Valid
		case prover.Valid, prover.Invalid:
		default:
			return fmt.Errorf("case %q: expect must be valid or invalid", c.Name)
		}
	}
	return nil
}

// LoadPaths loads every suite named by paths. Directories are walked for
// .yaml, .yml and .txt files.
func LoadPaths(paths []string) ([]*Suite, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", path, err)
		}
	}

	suites := make([]*Suite, 0, len(files))
	for _, file := range files {
		s, err := Load(file)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

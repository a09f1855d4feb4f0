// Package groupio reads group definitions and writes computation results.
//
// A group is defined by a list of generators in cycle notation, stored as
// TOML (the file format used by the CLI) or JSON (the wire format used by
// the HTTP API):
//
//	name = "s3"
//	generators = ["(1 2)", "(2 3)"]
//
// Results are exported as JSON envelopes stamped with a run ID so exported
// artifacts can be told apart even when they describe the same group.
package groupio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/permkit/permkit/pkg/group"
	"github.com/permkit/permkit/pkg/perm"
)

// ErrUnknownFormat is returned by [ReadDefinitionFile] when the file
// extension is neither .toml nor .json.
var ErrUnknownFormat = errors.New("unknown definition format")

// Definition is a group given by generators in cycle notation.
// An empty generator list defines the trivial group.
type Definition struct {
	Name       string   `toml:"name" json:"name,omitempty"`
	Generators []string `toml:"generators" json:"generators"`
}

// ReadDefinition decodes a TOML group definition.
func ReadDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	if _, err := toml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &def, nil
}

// ReadDefinitionJSON decodes a JSON group definition.
func ReadDefinitionJSON(r io.Reader) (*Definition, error) {
	var def Definition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &def, nil
}

// ReadDefinitionFile reads a group definition, picking the decoder from the
// file extension (.toml or .json).
func ReadDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ReadDefinition(f)
	case ".json":
		return ReadDefinitionJSON(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Group parses the definition's generators and returns the group they
// generate.
func (d *Definition) Group() (*group.Group, error) {
	gens, err := ParseGenerators(d.Generators)
	if err != nil {
		return nil, err
	}
	return group.New(gens), nil
}

// ParseGenerators parses a list of cycle-notation strings.
func ParseGenerators(specs []string) ([]perm.Perm, error) {
	gens := make([]perm.Perm, len(specs))
	for i, s := range specs {
		p, err := perm.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		gens[i] = p
	}
	return gens, nil
}

// Result is the JSON envelope for an exported computation. Order is decimal
// text because group orders routinely exceed int64.
type Result struct {
	RunID      string    `json:"run_id"`
	Name       string    `json:"name,omitempty"`
	Generators []string  `json:"generators"`
	Degree     int       `json:"degree"`
	Order      string    `json:"order"`
	Base       []int     `json:"base"`
	Elements   []string  `json:"elements,omitempty"`
	Words      [][]int   `json:"words,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewResult computes the structural summary of g (degree, order, base) and
// wraps it in an envelope with a fresh run ID.
func NewResult(name string, g *group.Group) *Result {
	gens := make([]string, len(g.Generators()))
	for i, p := range g.Generators() {
		gens[i] = p.String()
	}
	return &Result{
		RunID:      uuid.NewString(),
		Name:       name,
		Generators: gens,
		Degree:     g.Degree(),
		Order:      g.Order().String(),
		Base:       g.Base(),
		CreatedAt:  time.Now().UTC(),
	}
}

// WithElements adds the full element listing and generating words to the
// envelope. This materializes the whole group; see [group.Group.Elements].
func (r *Result) WithElements(g *group.Group) *Result {
	elems := g.Elements()
	r.Elements = make([]string, len(elems))
	for i, p := range elems {
		r.Elements[i] = p.String()
	}
	r.Words = g.Words()
	return r
}

// WriteResult encodes a result envelope as indented JSON.
func WriteResult(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteResultFile writes a result envelope to a JSON file.
// The file is created with 0644 permissions.
func WriteResultFile(path string, r *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(f, r)
}

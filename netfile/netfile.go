package netfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stnet/distgraph"
)

var (
	// ErrInvalid is returned for documents that do not decode or validate.
	ErrInvalid = errors.New("netfile: invalid network")

	// ErrUnknownTimepoint is returned when a name is used but never declared.
	ErrUnknownTimepoint = errors.New("netfile: unknown timepoint")
)

// Network is a decoded network description.
type Network struct {
	Origin      string       `yaml:"origin,omitempty"`
	Timepoints  []string     `yaml:"timepoints" validate:"required,min=1,unique,dive,required"`
	Constraints []Constraint `yaml:"constraints" validate:"dive"`
}

// Constraint bounds to − from to [Min, Max]. A nil bound is unbounded.
type Constraint struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required,nefield=From"`
	Min  *int64 `yaml:"min,omitempty"`
	Max  *int64 `yaml:"max,omitempty"`
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateConstraint, Constraint{})
}

// validateConstraint requires at least one bound and Min ≤ Max.
func validateConstraint(sl validator.StructLevel) {
	c := sl.Current().Interface().(Constraint)
	switch {
	case c.Min == nil && c.Max == nil:
		sl.ReportError(c.Max, "Max", "max", "required_without", "Min")
	case c.Min != nil && c.Max != nil && *c.Min > *c.Max:
		sl.ReportError(c.Max, "Max", "max", "gtefield", "Min")
	}
}

// Parse decodes and validates a YAML network. Unknown fields are rejected.
func Parse(data []byte) (*Network, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var n Network
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks field rules and that every referenced name is declared.
func (n *Network) Validate() error {
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	declared := make(map[string]struct{}, len(n.Timepoints))
	for _, name := range n.Timepoints {
		declared[name] = struct{}{}
	}
	if n.Origin != "" {
		if _, ok := declared[n.Origin]; !ok {
			return fmt.Errorf("%w: origin %q", ErrUnknownTimepoint, n.Origin)
		}
	}
	for i, c := range n.Constraints {
		for _, name := range []string{c.From, c.To} {
			if _, ok := declared[name]; !ok {
				return fmt.Errorf("%w: constraint %d references %q", ErrUnknownTimepoint, i, name)
			}
		}
	}

	return nil
}

// OriginName returns the declared origin, or the first timepoint.
func (n *Network) OriginName() string {
	if n.Origin != "" {
		return n.Origin
	}

	return n.Timepoints[0]
}

// Build creates one node per timepoint in declaration order and adds every
// constraint as edge specs. The graph is not propagated.
func (n *Network) Build(g *distgraph.Graph) (*Index, error) {
	idx := &Index{
		byName: make(map[string]distgraph.NodeID, len(n.Timepoints)),
		names:  make(map[distgraph.NodeID]string, len(n.Timepoints)),
	}
	for _, name := range n.Timepoints {
		id := g.CreateNode()
		idx.byName[name] = id
		idx.names[id] = name
		idx.order = append(idx.order, name)
	}

	for i, c := range n.Constraints {
		from, ok := idx.byName[c.From]
		if !ok {
			return nil, fmt.Errorf("%w: constraint %d references %q", ErrUnknownTimepoint, i, c.From)
		}
		to, ok := idx.byName[c.To]
		if !ok {
			return nil, fmt.Errorf("%w: constraint %d references %q", ErrUnknownTimepoint, i, c.To)
		}
		if c.Max != nil {
			if _, err := g.AddEdgeSpec(from, to, distgraph.Time(*c.Max)); err != nil {
				return nil, fmt.Errorf("netfile: constraint %d max: %w", i, err)
			}
		}
		if c.Min != nil {
			if _, err := g.AddEdgeSpec(to, from, distgraph.Time(-*c.Min)); err != nil {
				return nil, fmt.Errorf("netfile: constraint %d min: %w", i, err)
			}
		}
	}

	return idx, nil
}

// Index maps timepoint names to the nodes Build created and back.
type Index struct {
	byName map[string]distgraph.NodeID
	names  map[distgraph.NodeID]string
	order  []string
}

// Node returns the node of a timepoint name.
func (x *Index) Node(name string) (distgraph.NodeID, error) {
	id, ok := x.byName[name]
	if !ok {
		return distgraph.NodeID{}, fmt.Errorf("%w: %q", ErrUnknownTimepoint, name)
	}

	return id, nil
}

// Name returns the timepoint name of a node, or the node's own String form
// for nodes Build did not create.
func (x *Index) Name(id distgraph.NodeID) string {
	if name, ok := x.names[id]; ok {
		return name
	}

	return id.String()
}

// Names returns the timepoint names in declaration order.
func (x *Index) Names() []string {
	return append([]string(nil), x.order...)
}

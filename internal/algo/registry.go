package algo

import (
	"fmt"
	"iter"
	"sort"

	"github.com/san-kum/sortviz/internal/step"
)

// Producer emits the ordered step trace of one sorting algorithm while
// sorting a in place. The sequence is lazy and single-use: the caller pulls
// one step at a time (iter.Pull) and the producer's loop state survives
// between pulls. Consuming it to exhaustion leaves a sorted ascending.
// Empty and single-element inputs produce an empty sequence.
type Producer func(a []int) iter.Seq[step.Step]

// Complexity holds informational asymptotic bounds.
type Complexity struct {
	Best  string `json:"best" yaml:"best"`
	Avg   string `json:"avg" yaml:"avg"`
	Worst string `json:"worst" yaml:"worst"`
}

// Info is the static descriptor of a registered algorithm.
type Info struct {
	Name       string     `json:"name" yaml:"name"`
	Stable     bool       `json:"stable" yaml:"stable"`
	InPlace    bool       `json:"in_place" yaml:"in_place"`
	Comparison bool       `json:"comparison" yaml:"comparison"`
	Complexity Complexity `json:"complexity" yaml:"complexity"`
}

// Registry maps algorithm names to producers and their descriptors. It is
// built once at startup and passed to whoever composes the algorithm list;
// there is no package-level mutable state.
type Registry struct {
	producers map[string]Producer
	infos     map[string]Info
}

func NewRegistry() *Registry {
	return &Registry{
		producers: make(map[string]Producer),
		infos:     make(map[string]Info),
	}
}

// Register adds a producer under info.Name. Registering the same name twice
// is a configuration error.
func (r *Registry) Register(info Info, p Producer) error {
	if _, ok := r.producers[info.Name]; ok {
		return fmt.Errorf("algorithm already registered: %s", info.Name)
	}
	r.producers[info.Name] = p
	r.infos[info.Name] = info
	return nil
}

// Get returns the producer registered under name.
func (r *Registry) Get(name string) (Producer, error) {
	p, ok := r.producers[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return p, nil
}

// Info returns the descriptor registered under name.
func (r *Registry) Info(name string) (Info, error) {
	info, ok := r.infos[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return info, nil
}

// Names returns all registered algorithm names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.producers))
	for name := range r.producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default builds the registry holding every built-in algorithm.
func Default() *Registry {
	r := NewRegistry()
	for _, entry := range []struct {
		info Info
		p    Producer
	}{
		{bubbleInfo, Bubble},
		{insertionInfo, Insertion},
		{selectionInfo, Selection},
		{shellInfo, Shell},
		{combInfo, Comb},
		{cocktailInfo, Cocktail},
		{countingInfo, Counting},
		{radixInfo, RadixLSD},
		{mergeInfo, Merge},
		{quickInfo, Quick},
		{heapInfo, Heap},
		{bucketInfo, Bucket},
		{timsortInfo, TimsortTrace},
	} {
		if err := r.Register(entry.info, entry.p); err != nil {
			// Built-in names are unique; a collision here is a programming
			// error caught by tests.
			panic(err)
		}
	}
	return r
}

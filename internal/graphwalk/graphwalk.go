// Package graphwalk implements depth-first traversal over a directed graph
// with on-stack cycle reporting and postorder completion callbacks. Callers
// supply edges; the walker guarantees every reachable node completes exactly
// once and every back-edge is reported exactly once.
package graphwalk

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// Config configures one traversal.
type Config[K comparable] struct {
	// Starts are walked in order; traversal order is fully determined by
	// Starts and the order Next returns neighbors.
	Starts []K
	// Next returns the ordered neighbors of a node.
	Next func(K) []K
	// OnCycle reports a back-edge. path holds the on-stack nodes from the
	// cycle entry to the node whose edge closed it; closing is that last
	// node. Traversal continues afterwards.
	OnCycle func(path []K, closing K)
	// OnDone fires in postorder once all of a node's edges are processed.
	OnDone func(K)
}

// Walk traverses the graph. Nodes reported through OnCycle still complete
// through OnDone; callers decide what completion means for them.
func Walk[K comparable](cfg Config[K]) {
	states := make(map[K]visitState, len(cfg.Starts))
	stack := make([]K, 0, len(cfg.Starts))

	var visit func(key K)
	visit = func(key K) {
		switch states[key] {
		case stateVisiting:
			if cfg.OnCycle != nil {
				entry := 0
				for i, k := range stack {
					if k == key {
						entry = i
						break
					}
				}
				path := make([]K, len(stack)-entry)
				copy(path, stack[entry:])
				cfg.OnCycle(path, stack[len(stack)-1])
			}
			return
		case stateDone:
			return
		}

		states[key] = stateVisiting
		stack = append(stack, key)
		if cfg.Next != nil {
			for _, next := range cfg.Next(key) {
				visit(next)
			}
		}
		stack = stack[:len(stack)-1]
		states[key] = stateDone
		if cfg.OnDone != nil {
			cfg.OnDone(key)
		}
	}

	for _, start := range cfg.Starts {
		visit(start)
	}
}

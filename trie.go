package sbom

// trieNode is one node of the reversed-prefix trie. Nodes are held in
// a dense, pre-sized arena (trieArena.nodes) and addressed by id; this
// keeps ownership (the arena) separate from topology (the transition
// table built over it in oracle.go).
type trieNode struct {
	id           int
	parent       int // -1 only for the root
	parentSymbol byte

	children   map[byte]int // symbol -> child id, lazily initialised
	childOrder []byte       // symbols in insertion order, for deterministic BFS

	terms [][]byte // non-empty only at nodes reached at depth == prefixLen
}

// trieArena owns every trieNode created during one build. Nodes are
// created once and never mutated after the trie finishes building.
type trieArena struct {
	nodes []trieNode
}

func (a *trieArena) newNode(parent int, parentSymbol byte) int {
	a.nodes = append(a.nodes, trieNode{
		id:           len(a.nodes),
		parent:       parent,
		parentSymbol: parentSymbol,
	})
	return len(a.nodes) - 1
}

// bfsOrder enumerates every node id in breadth-first order from the
// root, following each node's children in insertion order. Two builds
// over the same pattern set in the same order produce the same
// sequence here, which is what lets buildOracle produce byte-identical
// transition tables across repeated builds.
func (a *trieArena) bfsOrder() []int {
	order := make([]int, 0, len(a.nodes))
	queue := make([]int, 0, len(a.nodes))
	order = append(order, 0)
	queue = append(queue, 0)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := &a.nodes[id]
		for _, sym := range node.childOrder {
			childID := node.children[sym]
			order = append(order, childID)
			queue = append(queue, childID)
		}
	}
	return order
}

// buildTrie builds a trie whose root-to-leaf paths spell the reversed
// length-ℓ prefixes of every pattern in set, where ℓ = set.prefixLen.
// Patterns sharing a reversed prefix share the path; both end up in
// the terminal node's terms.
func buildTrie(set *patternSet) *trieArena {
	ln := set.prefixLen

	// Upper bound on nodes: one per symbol of every reversed prefix,
	// plus the root. Pre-sizing from a pass over the pattern set
	// avoids reallocating the arena (and invalidating node pointers)
	// while inserting.
	maxNodes := 1
	for range set.patterns {
		maxNodes += ln
	}
	arena := &trieArena{nodes: make([]trieNode, 0, maxNodes)}
	arena.newNode(-1, 0) // root, id 0

	for _, p := range set.patterns {
		cur := 0
		for i := 0; i < ln; i++ {
			c := p[ln-1-i] // walk the reversed prefix left to right
			node := &arena.nodes[cur]
			childID, ok := -1, false
			if node.children != nil {
				childID, ok = node.children[c]
			}
			if !ok {
				childID = arena.newNode(cur, c)
				node = &arena.nodes[cur]
				if node.children == nil {
					node.children = make(map[byte]int)
				}
				node.children[c] = childID
				node.childOrder = append(node.childOrder, c)
			}
			cur = childID
		}
		arena.nodes[cur].terms = append(arena.nodes[cur].terms, p)
	}

	return arena
}

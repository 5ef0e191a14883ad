package sbom

// transitionTable is the factor oracle's transition function τ: a
// sparse (state, symbol) -> state map, stored per-state, indexed by
// dense node id. It never loses an entry once written (setIfAbsent is
// the only writer) and is immutable once buildOracle returns.
type transitionTable struct {
	arena  *trieArena
	states []map[byte]int // indexed by state id; nil entry means no outgoing edges yet
}

func (t *transitionTable) get(state int, sym byte) (int, bool) {
	edges := t.states[state]
	if edges == nil {
		return 0, false
	}
	next, ok := edges[sym]
	return next, ok
}

// setIfAbsent writes τ(state, sym) = next only if no entry exists yet;
// later attempts to write the same (state, sym) pair are discarded, so
// construction is deterministic regardless of call order. Returns
// whether it wrote.
func (t *transitionTable) setIfAbsent(state int, sym byte, next int) bool {
	if t.states[state] == nil {
		t.states[state] = make(map[byte]int)
	}
	if _, ok := t.states[state][sym]; ok {
		return false
	}
	t.states[state][sym] = next
	return true
}

func (t *transitionTable) size() int {
	return len(t.arena.nodes)
}

func (t *transitionTable) nodeByID(id int) *trieNode {
	if id < 0 || id >= len(t.arena.nodes) {
		return nil
	}
	return &t.arena.nodes[id]
}

// buildOracle augments the trie in arena with supplementary
// transitions, producing the flat transition table the search driver
// walks. Each non-root node contributes three kinds of edge: the
// primary trie edge, an internal supplementary edge found by walking
// up towards the root and replaying the collected symbols back down
// from the root, and a root fallback.
func buildOracle(arena *trieArena) transitionTable {
	tbl := transitionTable{
		arena:  arena,
		states: make([]map[byte]int, len(arena.nodes)),
	}
	hasInbound := make([]bool, len(arena.nodes))

	for _, nodeID := range arena.bfsOrder() {
		if nodeID == 0 {
			continue // the root itself never needs these edges computed for it
		}
		node := &arena.nodes[nodeID]
		parentID := node.parent
		c := node.parentSymbol

		// 1. Primary edge: always present, from the trie itself.
		tbl.setIfAbsent(parentID, c, nodeID)

		// 2. Internal supplementary edge.
		var walked []byte
		cur := parentID
		for cur != 0 && !hasInbound[cur] {
			walked = append(walked, arena.nodes[cur].parentSymbol)
			cur = arena.nodes[cur].parent
		}

		state := 0
		navigated := true
		for _, sym := range walked {
			next, ok := tbl.get(state, sym)
			if !ok {
				navigated = false
				break
			}
			state = next
		}
		if navigated && state != 0 {
			if _, defined := tbl.get(state, c); !defined {
				tbl.setIfAbsent(state, c, nodeID)
				hasInbound[state] = true
			}
		}

		// 3. Root fallback.
		if _, defined := tbl.get(0, c); !defined {
			tbl.setIfAbsent(0, c, nodeID)
			hasInbound[nodeID] = true
		}
	}

	return tbl
}

package txstore

// State is the hierarchical transaction container: address, then chain id,
// then transaction id. Intermediate levels are created lazily on first write
// and never pruned implicitly, so an empty leaf map is observably equivalent
// to an absent one for every read path.
type State map[string]map[int]map[string]*TransactionDetails

// newState returns an empty state tree.
func newState() State {
	return make(State)
}

// chainTransactions returns the leaf map for the given address and chain,
// creating the intermediate levels when create is set. Without create it
// returns nil when any level along the path is absent.
func (s State) chainTransactions(address string, chainID int, create bool) map[string]*TransactionDetails {
	byChain, ok := s[address]
	if !ok {
		if !create {
			return nil
		}
		byChain = make(map[int]map[string]*TransactionDetails)
		s[address] = byChain
	}

	byID, ok := byChain[chainID]
	if !ok {
		if !create {
			return nil
		}
		byID = make(map[string]*TransactionDetails)
		byChain[chainID] = byID
	}

	return byID
}

// get looks up a single transaction without creating any levels.
func (s State) get(address string, chainID int, id string) (*TransactionDetails, bool) {
	byID := s.chainTransactions(address, chainID, false)
	if byID == nil {
		return nil, false
	}

	tx, ok := byID[id]
	return tx, ok
}

// put inserts or replaces a transaction, creating intermediate levels as
// needed.
func (s State) put(tx *TransactionDetails) {
	s.chainTransactions(tx.From, tx.ChainID, true)[tx.ID] = tx
}

// clone returns a deep copy of the state tree. Records are cloned so the
// result shares no memory with the original.
func (s State) clone() State {
	copied := make(State, len(s))
	for address, byChain := range s {
		chains := make(map[int]map[string]*TransactionDetails, len(byChain))
		for chainID, byID := range byChain {
			txs := make(map[string]*TransactionDetails, len(byID))
			for id, tx := range byID {
				record := tx.Clone()
				txs[id] = &record
			}
			chains[chainID] = txs
		}
		copied[address] = chains
	}
	return copied
}

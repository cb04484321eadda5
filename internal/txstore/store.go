// Package txstore maintains the authoritative record of every transaction a
// wallet has submitted or observed, keyed by address, chain, and transaction
// id, with strict transition rules.
//
// Mutations are plain state transforms serialized through a single mutex, so
// concurrent operations resolve deterministically by acquisition order. Every
// operation checks its preconditions and fails loudly with an *OpError when
// they do not hold: store input is internally generated, and a mismatch
// indicates a programming error that should surface immediately rather than
// be silently ignored.
package txstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/txledger/internal/pkg/validator"
)

// Ref addresses a single transaction in the state tree.
type Ref struct {
	Address string `validate:"required"` // owning wallet address
	ChainID int    `validate:"required"` // chain the transaction was submitted on
	ID      string `validate:"required"` // transaction hash or synthetic batch id
}

// Store is the mutable container for all tracked transactions.
//
// The store is the sole writer of its state tree; readers receive deep copies
// and external collaborators mutate records only through the defined
// operations.
type Store struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		state: newState(),
		now:   time.Now,
	}
}

// Add inserts a new transaction record, creating intermediate state levels as
// needed. AddedTime defaults to the current time, Status to Pending, Routing
// to classic, and Origin to internal when unset.
//
// It fails with ErrTransactionExists if a record with the same id already
// exists under the same address and chain; the state is left untouched.
func (s *Store) Add(tx TransactionDetails) error {
	if err := validator.Validate(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.get(tx.From, tx.ChainID, tx.ID); ok {
		return newOpError("AddTransaction", "add a transaction that already exists", ErrTransactionExists, tx.ID)
	}

	record := tx.Clone()
	if record.Status == "" {
		record.Status = StatusPending
	}
	if record.AddedTime == 0 {
		record.AddedTime = s.now().UnixMilli()
	}
	if record.Routing == "" {
		record.Routing = RoutingClassic
	}
	if record.Origin == "" {
		record.Origin = OriginInternal
	}

	s.state.put(&record)
	return nil
}

// Update replaces the stored record's fields with the given transaction,
// keyed by its own (From, ChainID, ID) triple.
//
// It fails with ErrTransactionMissing if the record does not exist, and with
// ErrTypeInfoMismatch if the incoming type info is of a different kind than
// the stored one: a record's kind is immutable once added.
func (s *Store) Update(tx TransactionDetails) error {
	if err := validator.Validate(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.state.get(tx.From, tx.ChainID, tx.ID)
	if !ok {
		return newOpError("UpdateTransaction", "update a missing transaction", ErrTransactionMissing, tx.ID)
	}

	if existing.TypeInfo.Type() != tx.TypeInfo.Type() {
		return newOpError("UpdateTransaction", "change the type of a transaction", ErrTypeInfoMismatch, tx.ID)
	}

	record := tx.Clone()
	if record.AddedTime == 0 {
		record.AddedTime = existing.AddedTime
	}

	s.state.put(&record)
	return nil
}

// Checked records that the transaction was still absent from the chain at the
// given block, advancing LastCheckedBlockNumber monotonically: the stored
// value only ever moves to max(current, blockNumber).
//
// It fails with ErrTransactionMissing if the record does not exist, and with
// ErrTransactionNotPending if the record has left the Pending status:
// checking a settled transaction is an invariant violation, not a no-op.
func (s *Store) Checked(ref Ref, blockNumber int64) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("CheckedTransaction", "check a missing transaction", ErrTransactionMissing, ref.ID)
	}

	if tx.Status != StatusPending {
		return newOpError("CheckedTransaction", "check a transaction that is not pending", ErrTransactionNotPending, ref.ID)
	}

	if blockNumber > tx.LastCheckedBlockNumber {
		tx.LastCheckedBlockNumber = blockNumber
	}

	return nil
}

// Finalize transitions the transaction to a terminal Success or Failed
// status, attaching the receipt and, when present, the network fee. The
// receipt's ConfirmedTime is stamped with the current time when unset.
//
// It fails with ErrTransactionMissing if the record does not exist.
func (s *Store) Finalize(ref Ref, status Status, receipt *TransactionReceipt, fee *NetworkFee) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	if status != StatusSuccess && status != StatusFailed {
		return fmt.Errorf("FinalizeTransaction: invalid terminal status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("FinalizeTransaction", "finalize a missing transaction", ErrTransactionMissing, ref.ID)
	}

	tx.Status = status
	if receipt != nil {
		attached := *receipt
		if attached.ConfirmedTime == 0 {
			attached.ConfirmedTime = s.now().UnixMilli()
		}
		tx.Receipt = &attached
	}
	if fee != nil {
		attached := *fee
		tx.NetworkFee = &attached
	}

	return nil
}

// Cancel marks the transaction as Cancelling and records the cancellation
// request parameters. The terminal Cancelled status is reached later through
// CancelWithHash once the cancellation lands on chain.
//
// It fails with ErrTransactionMissing if the record does not exist.
func (s *Store) Cancel(ref Ref, cancelRequest *TransactionOptions) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("CancelTransaction", "cancel a missing transaction", ErrTransactionMissing, ref.ID)
	}

	tx.Status = StatusCancelling
	if cancelRequest != nil {
		request := *cancelRequest
		tx.CancelRequest = &request
	}

	return nil
}

// Replace marks the transaction as Replacing and merges the new request
// parameters over the stored ones; zero-valued fields of newOptions leave the
// existing parameters untouched.
//
// It fails with ErrTransactionMissing if the record does not exist.
func (s *Store) Replace(ref Ref, newOptions TransactionOptions) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("ReplaceTransaction", "replace a missing transaction", ErrTransactionMissing, ref.ID)
	}

	tx.Status = StatusReplacing
	if tx.Options == nil {
		tx.Options = new(TransactionOptions)
	}
	mergeOptions(tx.Options, newOptions)

	return nil
}

// ClearAll removes every transaction tracked for the given address and chain.
// Clearing an address or chain that was never written is a no-op.
func (s *Store) ClearAll(address string, chainID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if byChain, ok := s.state[address]; ok {
		delete(byChain, chainID)
	}
}

// ConfirmBridgeDeposit flags the source-chain deposit of a bridge transaction
// as confirmed.
//
// It fails with ErrTransactionMissing if the record does not exist, and with
// ErrNotBridge if the record is of any other kind.
func (s *Store) ConfirmBridgeDeposit(ref Ref) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("ConfirmBridgeDeposit", "confirm a deposit on a missing transaction", ErrTransactionMissing, ref.ID)
	}

	bridge, ok := tx.TypeInfo.(*BridgeInfo)
	if !ok {
		return newOpError("ConfirmBridgeDeposit", "confirm a deposit on a non-bridge transaction", ErrNotBridge, ref.ID)
	}

	bridge.DepositConfirmed = true
	return nil
}

// UpdateTypeInfo replaces the transaction's type info wholesale. The new info
// must be of the same kind as the stored one.
//
// It fails with ErrTransactionMissing if the record does not exist, and with
// ErrTypeInfoMismatch if the kinds differ; in both cases the stored info is
// left unchanged.
func (s *Store) UpdateTypeInfo(ref Ref, info TypeInfo) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("UpdateTransactionInfo", "update info on a missing transaction", ErrTransactionMissing, ref.ID)
	}

	if tx.TypeInfo.Type() != info.Type() {
		return newOpError("UpdateTransactionInfo", "change the type of a transaction", ErrTypeInfoMismatch, ref.ID)
	}

	tx.TypeInfo = cloneTypeInfo(info)
	return nil
}

// ApplyHashToBatch re-keys a batch transaction from its synthetic id to its
// now-known on-chain hash, setting the hash field on the re-inserted record.
//
// Unlike every other operation, a missing batch id is tolerated as a no-op:
// the batch may already have been resolved by a concurrent activity refresh,
// and that race is expected.
func (s *Store) ApplyHashToBatch(address string, chainID int, batchID, hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := s.state.chainTransactions(address, chainID, false)
	if byID == nil {
		return
	}

	tx, ok := byID[batchID]
	if !ok {
		return
	}

	delete(byID, batchID)
	tx.ID = hash
	tx.Hash = hash
	byID[hash] = tx
}

// CancelWithHash moves the transaction straight to the terminal Cancelled
// status and overwrites its hash with the cancellation transaction's hash,
// keeping the original id.
//
// It fails with ErrTransactionMissing if the record does not exist.
func (s *Store) CancelWithHash(ref Ref, cancelHash string) error {
	if err := validator.Validate(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return newOpError("CancelTransactionWithHash", "cancel a missing transaction", ErrTransactionMissing, ref.ID)
	}

	tx.Status = StatusCancelled
	tx.Hash = cancelHash
	return nil
}

// Transaction returns a copy of the addressed record, reporting whether it
// exists.
func (s *Store) Transaction(ref Ref) (TransactionDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.state.get(ref.Address, ref.ChainID, ref.ID)
	if !ok {
		return TransactionDetails{}, false
	}

	return tx.Clone(), true
}

// Pending returns copies of every Pending transaction on the given chain,
// across all addresses.
func (s *Store) Pending(chainID int) []TransactionDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []TransactionDetails
	for _, byChain := range s.state {
		for id := range byChain[chainID] {
			if tx := byChain[chainID][id]; tx.Status == StatusPending {
				pending = append(pending, tx.Clone())
			}
		}
	}

	return pending
}

// AddressTransactions returns copies of every transaction tracked for the
// given address and chain.
func (s *Store) AddressTransactions(address string, chainID int) []TransactionDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := s.state.chainTransactions(address, chainID, false)
	txs := make([]TransactionDetails, 0, len(byID))
	for _, tx := range byID {
		txs = append(txs, tx.Clone())
	}

	return txs
}

// Snapshot returns a deep copy of the full state tree for persistence or
// inspection. The copy shares no memory with the store.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// Restore inserts previously persisted records, replacing any records that
// share their ids. Used to rebuild the store from a snapshot at startup, so
// duplicate ids are not an error here.
func (s *Store) Restore(records []TransactionDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range records {
		record := tx.Clone()
		s.state.put(&record)
	}
}

// mergeOptions overwrites dst's fields with the non-zero fields of src.
func mergeOptions(dst *TransactionOptions, src TransactionOptions) {
	if src.To != "" {
		dst.To = src.To
	}
	if src.Value != "" {
		dst.Value = src.Value
	}
	if src.Data != "" {
		dst.Data = src.Data
	}
	if src.Nonce != 0 {
		dst.Nonce = src.Nonce
	}
	if src.GasLimit != "" {
		dst.GasLimit = src.GasLimit
	}
	if src.MaxFeePerGas != "" {
		dst.MaxFeePerGas = src.MaxFeePerGas
	}
}

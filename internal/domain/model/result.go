package model

// LedgerResult is the composite outcome of a committed mutation: the
// post-mutation balance together with the history entry it produced.
type LedgerResult struct {
	Balance Balance
	Entry   HistoryEntry
}

package domain

// Receipt is the outcome of a state-changing ledger call, handed back to the
// caller once the transaction is mined with success status.
type Receipt struct {
	TxHash      TxHash      `json:"txHash"`
	BlockNumber BlockNumber `json:"blockNumber"`
	GasUsed     uint64      `json:"gasUsed"`
}

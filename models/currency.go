package models

import "time"

// Currency is the coin balance record.
type Currency struct {
	Coins int `json:"coins"`
}

// CoinTransaction is one ledger entry. The log is kept newest-first and
// capped at MaxCoinTransactions entries.
type CoinTransaction struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

const MaxCoinTransactions = 50

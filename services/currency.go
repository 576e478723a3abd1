package services

import (
	"time"

	"link-organizer-system/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CurrencyService tracks the coin balance and a bounded, newest-first
// transaction log. Balance and log live under separate keys with no
// atomicity between the two writes; single-writer access makes that fine.
type CurrencyService struct {
	store Store
	log   *zap.Logger
}

func NewCurrencyService(store Store, log *zap.Logger) *CurrencyService {
	return &CurrencyService{store: store, log: log}
}

// LoadCurrency returns the stored balance, creating the zero record on
// first use.
func (s *CurrencyService) LoadCurrency() models.Currency {
	var currency models.Currency
	if s.store.Load(KeyCurrency, &currency) {
		return currency
	}
	currency = models.Currency{Coins: 0}
	s.store.Save(KeyCurrency, currency)
	return currency
}

// LoadTransactions returns the ledger, newest first.
func (s *CurrencyService) LoadTransactions() []models.CoinTransaction {
	var txs []models.CoinTransaction
	if s.store.Load(KeyTransactions, &txs) {
		return txs
	}
	return []models.CoinTransaction{}
}

// AddCoins adjusts the balance (amount may be negative for spending) and
// prepends a transaction record, keeping only the most recent entries.
func (s *CurrencyService) AddCoins(amount int, reason string) models.Currency {
	currency := s.LoadCurrency()
	currency.Coins += amount

	tx := models.CoinTransaction{
		ID:        uuid.NewString(),
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	txs := append([]models.CoinTransaction{tx}, s.LoadTransactions()...)
	if len(txs) > models.MaxCoinTransactions {
		txs = txs[:models.MaxCoinTransactions]
	}
	s.store.Save(KeyTransactions, txs)
	s.store.Save(KeyCurrency, currency)

	s.log.Info("coins adjusted", zap.Int("amount", amount), zap.String("reason", reason), zap.Int("balance", currency.Coins))
	return currency
}

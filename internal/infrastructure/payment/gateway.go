package payment

import (
	"context"
	"log"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"smmstore/internal/domain"
)

// Provider accepts a finalized payment request and resolves it to a terminal
// outcome. Real gateway integrations implement this; the mock below is one
// implementation, not the contract.
type Provider interface {
	Submit(ctx context.Context, req domain.PaymentRequest) domain.PaymentOutcome
}

// User-facing messages. Validation messages follow the wire contract,
// processing messages are localized.
const (
	MsgSuccess         = "Платеж успешно обработан"
	MsgInternalError   = "Внутренняя ошибка сервера"
	MsgInvalidAmount   = "Invalid amount"
	MsgMissingFields   = "Missing required fields"
	MsgMissingUserData = "User name and email are required"
)

var declineReasons = []string{
	"Недостаточно средств на карте",
	"Карта заблокирована",
	"Превышен лимит операций",
	"Ошибка банка",
}

type Config struct {
	SuccessRate float64 // probability of a successful charge, [0,1]
	Delay       time.Duration
	Rand        *rand.Rand // nil uses the shared source
}

func DefaultConfig() Config {
	return Config{SuccessRate: 0.9, Delay: 2 * time.Second}
}

// Gateway simulates an acquirer: it validates the request, generates a
// transaction id, waits out a fake round trip and settles by weighted draw.
// Settled results are kept so a reconciler can ask about them later.
type Gateway struct {
	successRate float64
	delay       time.Duration

	rndMu sync.Mutex
	rnd   *rand.Rand

	mu      sync.RWMutex
	settled map[string]bool // transaction id -> charged
}

func NewGateway(cfg Config) *Gateway {
	return &Gateway{
		successRate: cfg.SuccessRate,
		delay:       cfg.Delay,
		rnd:         cfg.Rand,
		settled:     make(map[string]bool),
	}
}

func (g *Gateway) Submit(ctx context.Context, req domain.PaymentRequest) domain.PaymentOutcome {
	if out, ok := validate(req); !ok {
		return out
	}

	txnID := g.newTransactionID()
	log.Printf("[gateway] processing txn=%s amount=%s service=%s method=%s",
		txnID, req.Amount, req.ServiceID, req.PaymentMethod)

	// A submitted request runs to completion; there is no cancellation
	// primitive, the caller can only ignore the result.
	if g.delay > 0 {
		time.Sleep(g.delay)
	}

	if g.roll() < g.successRate {
		g.record(txnID, true)
		return domain.PaymentOutcome{
			Success:       true,
			Message:       MsgSuccess,
			TransactionID: txnID,
			Status:        domain.OutcomeCompleted,
		}
	}

	reason := declineReasons[g.intn(len(declineReasons))]
	g.record(txnID, false)
	return domain.PaymentOutcome{
		Success:       false,
		Message:       reason,
		TransactionID: txnID,
		Status:        domain.OutcomeFailed,
	}
}

// CheckStatus reports the settled result for a transaction id. found is false
// for ids the gateway never settled.
func (g *Gateway) CheckStatus(ctx context.Context, transactionID string) (charged bool, found bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	charged, found = g.settled[transactionID]
	return charged, found
}

// validate short-circuits on the first failing check. No transaction id is
// generated and no delay is incurred for a rejected request.
func validate(req domain.PaymentRequest) (domain.PaymentOutcome, bool) {
	reject := func(msg string) (domain.PaymentOutcome, bool) {
		return domain.PaymentOutcome{Success: false, Message: msg, Status: domain.OutcomeFailed}, false
	}
	if !req.Amount.IsPositive() {
		return reject(MsgInvalidAmount)
	}
	if req.ServiceID == "" || req.PaymentMethod == "" {
		return reject(MsgMissingFields)
	}
	if req.UserData.Name == "" || req.UserData.Email == "" {
		return reject(MsgMissingUserData)
	}
	return domain.PaymentOutcome{}, true
}

func (g *Gateway) record(txnID string, charged bool) {
	g.mu.Lock()
	g.settled[txnID] = charged
	g.mu.Unlock()
}

func (g *Gateway) roll() float64 {
	if g.rnd == nil {
		return rand.Float64()
	}
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return g.rnd.Float64()
}

func (g *Gateway) intn(n int) int {
	if g.rnd == nil {
		return rand.IntN(n)
	}
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return g.rnd.IntN(n)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newTransactionID produces TXN_<unix-ms>_<9 base36 chars>. Unique with
// overwhelming probability; no durability guarantee beyond that.
func (g *Gateway) newTransactionID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[g.intn(len(base36))]
	}
	return "TXN_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}

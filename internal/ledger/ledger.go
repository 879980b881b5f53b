// Package ledger holds the demo account: a balance and the transactions that moved it.
//
// Deposits and withdrawals take the raw text of the amount field. Input that does not
// parse, is not positive, or would overdraw the account is ignored: the call reports
// false and leaves the ledger untouched.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes money in from money out.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Descriptions recorded for terminal actions and the demo seed.
const (
	DepositDescription    = "Deposit via terminal"
	WithdrawalDescription = "Withdrawal via terminal"
	SeedDescription       = "Initial deposit"
)

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      decimal.Decimal
	Timestamp   time.Time
	Description string
}

// Point is the balance right after a transaction was applied.
type Point struct {
	Time    time.Time
	Balance decimal.Decimal
}

// Ledger is an in-memory account. Transactions are kept newest first.
type Ledger struct {
	mu           sync.RWMutex
	balance      decimal.Decimal
	transactions []Transaction
	now          func() time.Time
	newID        func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the time source used to stamp new transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithIDs sets the identifier source for new transactions.
func WithIDs(newID func() string) Option {
	return func(l *Ledger) {
		if newID != nil {
			l.newID = newID
		}
	}
}

// New returns a ledger opened with the given balance. A negative opening
// balance is clamped to zero.
func New(opening decimal.Decimal, opts ...Option) *Ledger {
	if opening.IsNegative() {
		opening = decimal.Zero
	}
	l := &Ledger{
		balance: opening,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Demo defaults.
var (
	DemoOpeningBalance = decimal.NewFromInt(1000)
	DemoSeedAmount     = decimal.NewFromInt(500)
)

// NewDemo returns the dashboard's starting ledger: 1000.00 available and a
// single 500.00 deposit dated one day ago. The seed is history only and is
// not added to the opening balance.
func NewDemo(opts ...Option) *Ledger {
	l := New(DemoOpeningBalance, opts...)
	l.seed(DemoSeedAmount, SeedDescription)
	return l
}

// NewSeeded is NewDemo with a configurable opening balance and seed entry.
// A non-positive seed amount records no history.
func NewSeeded(opening, seedAmount decimal.Decimal, seedDescription string, opts ...Option) *Ledger {
	l := New(opening, opts...)
	if seedAmount.IsPositive() {
		if strings.TrimSpace(seedDescription) == "" {
			seedDescription = SeedDescription
		}
		l.seed(seedAmount, seedDescription)
	}
	return l
}

func (l *Ledger) seed(amount decimal.Decimal, description string) {
	l.transactions = append(l.transactions, Transaction{
		ID:          l.newID(),
		Kind:        KindDeposit,
		Amount:      amount,
		Timestamp:   l.now().Add(-24 * time.Hour),
		Description: description,
	})
}

// ParseAmount reads the amount field. Empty or non-numeric text is not ok.
func ParseAmount(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CanDeposit reports whether Deposit(text) would be accepted.
func (l *Ledger) CanDeposit(text string) bool {
	amount, ok := ParseAmount(text)
	return ok && amount.IsPositive()
}

// CanWithdraw reports whether Withdraw(text) would be accepted.
func (l *Ledger) CanWithdraw(text string) bool {
	amount, ok := ParseAmount(text)
	if !ok || !amount.IsPositive() {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return amount.LessThanOrEqual(l.balance)
}

// Deposit credits the parsed amount and records it. It reports whether the
// input was accepted.
func (l *Ledger) Deposit(text string) bool {
	amount, ok := ParseAmount(text)
	if !ok {
		return false
	}
	_, ok = l.DepositAmount(amount)
	return ok
}

// Withdraw debits the parsed amount and records it. It reports whether the
// input was accepted.
func (l *Ledger) Withdraw(text string) bool {
	amount, ok := ParseAmount(text)
	if !ok {
		return false
	}
	_, ok = l.WithdrawAmount(amount)
	return ok
}

// DepositAmount credits amount when it is positive.
func (l *Ledger) DepositAmount(amount decimal.Decimal) (Transaction, bool) {
	if !amount.IsPositive() {
		return Transaction{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = l.balance.Add(amount)
	return l.prepend(KindDeposit, amount, DepositDescription), true
}

// WithdrawAmount debits amount when 0 < amount <= balance.
func (l *Ledger) WithdrawAmount(amount decimal.Decimal) (Transaction, bool) {
	if !amount.IsPositive() {
		return Transaction{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount.GreaterThan(l.balance) {
		return Transaction{}, false
	}
	l.balance = l.balance.Sub(amount)
	return l.prepend(KindWithdrawal, amount, WithdrawalDescription), true
}

// prepend must be called with mu held.
func (l *Ledger) prepend(kind Kind, amount decimal.Decimal, description string) Transaction {
	tx := Transaction{
		ID:          l.newID(),
		Kind:        kind,
		Amount:      amount,
		Timestamp:   l.now(),
		Description: description,
	}
	l.transactions = append([]Transaction{tx}, l.transactions...)
	return tx
}

// Balance returns the available funds.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance
}

// Transactions returns a copy of the history, newest first.
func (l *Ledger) Transactions() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.transactions)
}

// History walks back from the current balance and returns the balance after
// each transaction, oldest first. The last point always equals Balance().
func (l *Ledger) History() []Point {
	l.mu.RLock()
	defer l.mu.RUnlock()
	points := make([]Point, len(l.transactions))
	running := l.balance
	for i, tx := range l.transactions {
		points[len(points)-1-i] = Point{Time: tx.Timestamp, Balance: running}
		switch tx.Kind {
		case KindDeposit:
			running = running.Sub(tx.Amount)
		case KindWithdrawal:
			running = running.Add(tx.Amount)
		}
	}
	return points
}

// Sign returns "+" for deposits and "-" for withdrawals.
func (k Kind) Sign() string {
	if k == KindWithdrawal {
		return "-"
	}
	return "+"
}

func (k Kind) String() string { return string(k) }

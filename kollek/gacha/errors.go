package gacha

import (
	"fmt"
	"time"
)

// CooldownActiveError reports that an action was refused because its
// cooldown window has not elapsed. It is an expected, user-facing
// outcome, not a system failure; no state is mutated when it is
// returned.
type CooldownActiveError struct {
	Kind      ActionKind
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("%s on cooldown for another %s", e.Kind, e.Remaining)
}

// InsufficientFundsError reports a refused debit. The wallet is left
// untouched.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %d, have %d", e.Required, e.Available)
}

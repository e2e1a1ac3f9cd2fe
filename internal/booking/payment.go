package booking

import (
	"context"
	"log"
	"time"
)

// Processor charges a card.
type Processor interface {
	Charge(ctx context.Context, amount float64, card Card) error
}

// MockProcessor approves every charge after Delay. No money moves.
type MockProcessor struct {
	Delay time.Duration
}

func (p MockProcessor) Charge(ctx context.Context, amount float64, card Card) error {
	if p.Delay > 0 {
		t := time.NewTimer(p.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	log.Printf("[booking] mock charge of %s approved", FormatPrice(amount))
	return nil
}

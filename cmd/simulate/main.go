package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"smmstore/internal/catalog"
	"smmstore/internal/checkout"
	"smmstore/internal/domain"
	"smmstore/internal/infrastructure/payment"
	"smmstore/internal/service"
)

// Runs a batch of checkouts against the mock gateway and prints the outcome
// distribution. No record store, purely in-memory.
func main() {
	ctx := context.Background()

	gateway := payment.NewGateway(payment.Config{
		SuccessRate: 0.9,
		Delay:       100 * time.Millisecond,
	})
	checkoutSvc := service.NewCheckoutService(gateway, nil, nil)

	authState := domain.AuthState{
		Authenticated: true,
		Name:          "Simulated User",
		Email:         "sim@smmstore.local",
	}

	services := catalog.All()

	fmt.Println("--- STARTING SIMULATION (20 CHECKOUTS) ---")
	var succeeded, declined int
	for i := 0; i < 20; i++ {
		svc := services[i%len(services)]

		draft := checkout.NewDraft(svc)
		draft.SetURL(fmt.Sprintf("https://%s.com/sim-%d", svc.Platform, i))
		draft.SetQuantity(1000)

		order, err := checkout.Validate(draft, authState)
		if err != nil {
			log.Printf("validation failed for %s: %v", svc.ID, err)
			continue
		}

		fmt.Printf("[%d] %s x%d = %s₸ ... ", i+1, svc.ID, order.Quantity, order.Total)
		outcome := checkoutSvc.Submit(ctx, order.PaymentRequest(authState, "card"))
		if outcome.Success {
			succeeded++
			fmt.Printf("SUCCESS (%s)\n", outcome.TransactionID)
		} else {
			declined++
			fmt.Printf("DECLINED: %s (%s)\n", outcome.Message, outcome.TransactionID)
		}
	}
	fmt.Printf("--- DONE: %d succeeded, %d declined ---\n", succeeded, declined)
}

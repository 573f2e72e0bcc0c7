package workers

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/donation-ledger/adapters/memory"
	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

type capturingPublisher struct {
	topics []string
	events []ports.EventEnvelope
	err    error
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func settledStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore([]memory.CampaignFinance{{
		CampaignID: "camp-1",
		Goal:       decimal.RequireFromString("500.00"),
	}})
	_, err := store.SettleDonation(context.Background(), entities.Donation{
		DonationID:    "don-1",
		ReferenceCode: "DN-TEST2345",
		CampaignID:    "camp-1",
		Amount:        decimal.RequireFromString("40.00"),
		DonorEmail:    "donor@example.org",
		Method:        entities.PaymentMethodCard,
		Status:        entities.DonationStatusCompleted,
		CreatedAt:     time.Date(2026, time.March, 8, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed settlement failed: %v", err)
	}
	return store
}

func TestRunOncePublishesAndMarksPendingRows(t *testing.T) {
	store := settledStore(t)
	publisher := &capturingPublisher{}
	relay := OutboxRelay{
		Outbox:    store,
		Publisher: publisher,
		Clock:     fixedClock{now: time.Date(2026, time.March, 8, 9, 1, 0, 0, time.UTC)},
	}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay cycle failed: %v", err)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected one published event, got %d", len(publisher.events))
	}
	if publisher.topics[0] != "notifications" {
		t.Fatalf("expected default topic notifications, got %q", publisher.topics[0])
	}
	event := publisher.events[0]
	if event.EventType != "donation.settled" || event.EntityID != "don-1" {
		t.Fatalf("unexpected envelope %+v", event)
	}

	remaining, _ := store.ListPendingOutbox(context.Background(), 100)
	if len(remaining) != 0 {
		t.Fatalf("published rows must leave the pending set, got %d", len(remaining))
	}
}

func TestRunOnceIsIdempotentAcrossCycles(t *testing.T) {
	store := settledStore(t)
	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("first cycle failed: %v", err)
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("second cycle failed: %v", err)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("second cycle must publish nothing, total published %d", len(publisher.events))
	}
}

func TestRunOnceKeepsRowPendingWhenPublishFails(t *testing.T) {
	store := settledStore(t)
	publisher := &capturingPublisher{err: context.DeadlineExceeded}
	relay := OutboxRelay{Outbox: store, Publisher: publisher}

	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected the publish error to surface")
	}

	pending, _ := store.ListPendingOutbox(context.Background(), 100)
	if len(pending) != 1 {
		t.Fatalf("failed publish must keep the row pending, got %d", len(pending))
	}
}

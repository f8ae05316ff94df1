package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/cart/repository"
	"sweet-shop/internal/catalog"
	"sweet-shop/pkg/log"
)

func addOne(c *cart.Cart) error {
	_, err := c.AddLine(catalog.Item{ID: "a", Name: "Alpha", Price: decimal.NewFromInt(1), Quantity: 5}, 1)
	return err
}

func TestUpdateCart(t *testing.T) {
	ctx := context.Background()
	r := New(log.NewNop(), repository.SessionOptions{MaxSessions: 2, TTL: time.Hour})

	c, err := r.UpdateCart(ctx, "s1", addOne)
	if err != nil || len(c.Lines) != 1 || c.SessionID != "s1" {
		t.Fatalf("update: %+v %v", c, err)
	}

	boom := errors.New("boom")
	_, err = r.UpdateCart(ctx, "s1", func(c *cart.Cart) error {
		c.Lines[0].Quantity = 99
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, _ := r.GetCart(ctx, "s1")
	if got.Lines[0].Quantity != 1 {
		t.Errorf("failed update leaked: qty %d", got.Lines[0].Quantity)
	}
}

func TestGetCart_Empty(t *testing.T) {
	r := New(log.NewNop(), repository.SessionOptions{})
	c, err := r.GetCart(context.Background(), "nobody")
	if err != nil || c.SessionID != "nobody" || len(c.Lines) != 0 {
		t.Errorf("got %+v %v", c, err)
	}
}

func TestSessionsExpire(t *testing.T) {
	ctx := context.Background()
	r := New(log.NewNop(), repository.SessionOptions{MaxSessions: 10, TTL: 20 * time.Millisecond})
	r.UpdateCart(ctx, "s1", addOne)

	time.Sleep(60 * time.Millisecond)

	c, _ := r.GetCart(ctx, "s1")
	if len(c.Lines) != 0 {
		t.Errorf("expected expired cart, got %v", c.Lines)
	}
}

func TestOldestSessionEvicted(t *testing.T) {
	ctx := context.Background()
	r := New(log.NewNop(), repository.SessionOptions{MaxSessions: 2, TTL: time.Hour})
	r.UpdateCart(ctx, "s1", addOne)
	r.UpdateCart(ctx, "s2", addOne)
	r.UpdateCart(ctx, "s3", addOne)

	if c, _ := r.GetCart(ctx, "s1"); len(c.Lines) != 0 {
		t.Error("s1 should have been evicted")
	}
	if c, _ := r.GetCart(ctx, "s3"); len(c.Lines) != 1 {
		t.Error("s3 missing")
	}
}

func TestDeleteCart(t *testing.T) {
	ctx := context.Background()
	r := New(log.NewNop(), repository.SessionOptions{})
	r.UpdateCart(ctx, "s1", addOne)
	r.DeleteCart(ctx, "s1")
	if c, _ := r.GetCart(ctx, "s1"); len(c.Lines) != 0 {
		t.Error("cart not deleted")
	}
}

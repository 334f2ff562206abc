package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Region  string `json:"region"`
	ZIP     string `json:"zip"`
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type CheckoutPart struct {
	SubOrderID    string     `json:"sub_order_id"`
	StoreID       string     `json:"store_id"`
	Items         []LineItem `json:"items"`
	Subtotal      int64      `json:"subtotal"`
	ShippingPrice int64      `json:"shipping_price"`
	Total         int64      `json:"total"`
}

type CheckoutEvent struct {
	OrderID     string          `json:"order_id"`
	BuyerID     string          `json:"buyer_id"`
	BuyerName   string          `json:"buyer_name"`
	BuyerEmail  string          `json:"buyer_email"`
	TotalAmount int64           `json:"total_amount"`
	Shipping    ShippingAddress `json:"shipping"`
	SubOrders   []CheckoutPart  `json:"sub_orders"`
	CreatedAt   time.Time       `json:"created_at"`
}

type SettlementEvent struct {
	SubOrderID    string `json:"sub_order_id"`
	Amount        int64  `json:"amount"`
	ShippingPrice int64  `json:"shipping_price"`
	Notes         string `json:"notes"`
}

// Магазины должны существовать в базе, кошельки создаются вместе с ними.
var stores = []string{
	"0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11",
	"0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f12",
	"0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f13",
}

func generateCheckout() CheckoutEvent {
	buyer := rand.Intn(1000)
	event := CheckoutEvent{
		OrderID:    uuid.NewString(),
		BuyerID:    fmt.Sprintf("buyer-%d", buyer),
		BuyerName:  fmt.Sprintf("Buyer %d", buyer),
		BuyerEmail: fmt.Sprintf("buyer%d@example.com", buyer),
		Shipping: ShippingAddress{
			Name:    fmt.Sprintf("Buyer %d", buyer),
			Phone:   fmt.Sprintf("+1555%07d", rand.Intn(9999999)),
			Address: fmt.Sprintf("Street %d", rand.Intn(100)),
			City:    "Springfield",
			ZIP:     fmt.Sprintf("%05d", rand.Intn(99999)),
		},
		CreatedAt: time.Now().UTC(),
	}

	for _, store := range rand.Perm(len(stores))[:rand.Intn(len(stores))+1] {
		part := CheckoutPart{
			SubOrderID:    uuid.NewString(),
			StoreID:       stores[store],
			ShippingPrice: int64(rand.Intn(10)) * 500,
		}
		for range rand.Intn(3) + 1 {
			item := LineItem{
				ProductID: uuid.NewString(),
				Name:      fmt.Sprintf("Item %d", rand.Intn(500)),
				Quantity:  rand.Intn(3) + 1,
				UnitPrice: int64(rand.Intn(20000) + 1000),
			}
			part.Items = append(part.Items, item)
			part.Subtotal += int64(item.Quantity) * item.UnitPrice
		}
		part.Total = part.Subtotal + part.ShippingPrice
		event.TotalAmount += part.Total
		event.SubOrders = append(event.SubOrders, part)
	}
	return event
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka broker")
	settle := flag.String("settle", "", "sub-order id to release escrow for instead of generating orders")
	amount := flag.Int64("amount", 0, "settlement amount")
	shipping := flag.Int64("shipping", 0, "settlement shipping price")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if *settle != "" {
		writer := &kafka.Writer{Addr: kafka.TCP(*brokers), Topic: "settlements"}
		defer writer.Close()

		data, _ := json.Marshal(SettlementEvent{SubOrderID: *settle, Amount: *amount, ShippingPrice: *shipping})
		if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(*settle), Value: data}); err != nil {
			log.Fatalln("failed to publish settlement", err)
		}
		log.Println("settlement published", *settle)
		return
	}

	writer := &kafka.Writer{Addr: kafka.TCP(*brokers), Topic: "orders"}
	defer writer.Close()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateCheckout()
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data}); err != nil {
				log.Println("failed to publish order", err)
				continue
			}
			log.Println("order generated", event.OrderID, "sub-orders:", len(event.SubOrders))
		case <-ctx.Done():
			return
		}
	}
}

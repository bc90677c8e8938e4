package service

import (
	"context"
)

// DealEvent represents a catalog event to be processed by the alert worker
type DealEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`           // e.g. "deal.featured"
	DealID    string `json:"deal_id"`
	StoreID   string `json:"store_id"`
	Title     string `json:"title"`
	Discount  string `json:"discount"`
}

// Deal event types published to the queue.
const (
	EventDealFeatured = "deal.featured"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDealEvent publishes a deal event for async processing
	PublishDealEvent(ctx context.Context, event *DealEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Package notify defines the notification interface and implementations
// for deal alert delivery.
package notify

import (
	"context"
)

// BucketWeight is one entry of the probability mass shown in an alert.
type BucketWeight struct {
	Label   string
	Percent float64
}

// DealAlert contains the data needed to send a deal notification.
type DealAlert struct {
	ItemID      string
	Name        string
	TypeLine    string
	Category    string
	League      string
	ListedChaos float64
	Estimate    float64
	Profit      float64
	TopBuckets  []BucketWeight
}

// Notifier defines the interface for sending deal notifications.
type Notifier interface {
	SendDeal(ctx context.Context, alert *DealAlert) error
	SendDealBatch(ctx context.Context, alerts []DealAlert) error
}

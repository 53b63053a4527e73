package domain

import "time"

// ActivityType names an audited wishlist mutation.
type ActivityType string

const (
	ActivityUserRegistered ActivityType = "user_registered"
	ActivityItemAdded      ActivityType = "item_added"
	ActivityItemCopied     ActivityType = "item_copied"
	ActivityItemRemoved    ActivityType = "item_removed"
)

// Activity is an entry in the append-only audit trail.
type Activity struct {
	UserID    int64
	Type      ActivityType
	TargetID  int64
	Message   string
	Timestamp time.Time
}

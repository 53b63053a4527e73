package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

func TestActivityDocument(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 0, 0, 0, time.FixedZone("CST", -6*3600))

	doc := activityDocument(&domain.Activity{
		UserID:    2,
		Type:      domain.ActivityItemCopied,
		TargetID:  9,
		Message:   "Bicycle",
		Timestamp: ts,
	})

	require.Equal(t, int64(2), doc["user_id"])
	require.Equal(t, "item_copied", doc["type"])
	require.Equal(t, int64(9), doc["target_id"])
	require.Equal(t, time.UTC, doc["timestamp"].(time.Time).Location())
}

package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lodger-platform/admin-service/internal/domain"
)

func TestChannelReportFeedDelivers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewChannelReportFeed(4)
	updates, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	report := domain.Report{ID: "rep-1", Reason: "Spam", Status: domain.ReportStatusPending}
	require.NoError(t, feed.Publish(ctx, report))

	select {
	case got := <-updates:
		require.Equal(t, "rep-1", got.ID)
	case <-time.After(time.Second):
		t.Fatal("report never arrived")
	}
}

func TestChannelReportFeedClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	feed := NewChannelReportFeed(1)
	updates, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-updates:
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel did not close")
	}
}

func TestChannelReportFeedDropsWhenFull(t *testing.T) {
	ctx := context.Background()
	feed := NewChannelReportFeed(1)

	// No subscriber draining; the second publish overflows the buffer and is
	// dropped rather than blocking.
	require.NoError(t, feed.Publish(ctx, domain.Report{ID: "rep-1"}))
	require.NoError(t, feed.Publish(ctx, domain.Report{ID: "rep-2"}))
}

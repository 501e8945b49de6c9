package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventReportCreated, func(_ context.Context, event Event) error {
		seen = append(seen, event.ID)
		return nil
	})
	d.Subscribe(EventUserDeleted, func(_ context.Context, event Event) error {
		t.Fatal("wrong handler invoked")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "e1", Type: EventReportCreated}))
	require.Equal(t, []string{"e1"}, seen)
}

func TestDispatcherHandlerErrorsDoNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := 0
	d.Subscribe(EventUserBanned, func(context.Context, Event) error {
		called++
		return errors.New("boom")
	})
	d.Subscribe(EventUserBanned, func(context.Context, Event) error {
		called++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserBanned}))
	require.Equal(t, 2, called)
}

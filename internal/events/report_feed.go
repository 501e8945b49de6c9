package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// ReportFeed carries newly created pending reports to whoever is listening.
// Delivery is fire-and-forget: a consumer that is disconnected misses the
// event and there is no replay.
type ReportFeed interface {
	Publish(ctx context.Context, report domain.Report) error
	// Subscribe returns a channel of new pending reports. The channel closes
	// when ctx is cancelled; the subscription is not restartable.
	Subscribe(ctx context.Context) (<-chan domain.Report, error)
}

// redisReportFeed implements ReportFeed over a Redis pub/sub channel.
type redisReportFeed struct {
	client  *redis.Client
	channel string
}

// NewRedisReportFeed builds a feed on the given channel name.
func NewRedisReportFeed(client *redis.Client, channel string) ReportFeed {
	return &redisReportFeed{client: client, channel: channel}
}

func (f *redisReportFeed) Publish(ctx context.Context, report domain.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, f.channel, payload).Err()
}

func (f *redisReportFeed) Subscribe(ctx context.Context) (<-chan domain.Report, error) {
	sub := f.client.Subscribe(ctx, f.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan domain.Report)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var report domain.Report
				if err := json.Unmarshal([]byte(msg.Payload), &report); err != nil {
					continue
				}
				select {
				case out <- report:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// channelReportFeed is the in-process feed used by tests.
type channelReportFeed struct {
	ch chan domain.Report
}

// NewChannelReportFeed returns a feed backed by a buffered Go channel.
func NewChannelReportFeed(buffer int) ReportFeed {
	return &channelReportFeed{ch: make(chan domain.Report, buffer)}
}

func (f *channelReportFeed) Publish(_ context.Context, report domain.Report) error {
	select {
	case f.ch <- report:
	default:
		// Feed consumers that fall behind miss events, same as pub/sub.
	}
	return nil
}

func (f *channelReportFeed) Subscribe(ctx context.Context) (<-chan domain.Report, error) {
	out := make(chan domain.Report)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case report := <-f.ch:
				select {
				case out <- report:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

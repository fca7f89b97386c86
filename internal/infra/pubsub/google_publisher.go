package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"advisor/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the project and fails fast when the topic does not exist
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Events of one user are delivered in publish order.
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishQuestionnaireCompleted publishes the event and waits for the server acknowledgement
func (p *googlePubSubPublisher) PublishQuestionnaireCompleted(ctx context.Context, event *service.QuestionnaireCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.UserID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.UserID)

		return errors.Wrapf(err, "publish completion for user %s", event.UserID)
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Event published",
		slog.String("user_id", event.UserID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

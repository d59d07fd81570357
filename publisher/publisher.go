package publisher

import (
	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/domain/business/report"
	"context"
	"encoding/json"
	"fmt"
	log "github.com/sirupsen/logrus"
	"time"
)

// Publisher sends the summary of an analysis run to an external system
type Publisher interface {
	Publish(ctx context.Context, summary *report.Summary) error
	Close() error
}

// messageBroker is the subset of communication.RabbitMQ used to publish summaries
type messageBroker interface {
	DeclareExchanges(exchangesConfig []communication.ExchangeDeclarationConfig) error
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, contentType string) error
	KillBadBunny() error
}

// NewPublisher returns a RabbitPublisher if the publisher is enabled, otherwise a NoopPublisher
func NewPublisher(publisherConfig config.PublisherConfig) (Publisher, error) {
	if !publisherConfig.Enabled {
		return NoopPublisher{}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.RabbitURL)
	if err != nil {
		return nil, err
	}

	rabbitPublisher, err := newRabbitPublisher(rabbitMQ, publisherConfig)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}
	return rabbitPublisher, nil
}

// NoopPublisher discards every summary
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *report.Summary) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

// RabbitPublisher publishes each summary as a JSON message in a RabbitMQ exchange
type RabbitPublisher struct {
	broker messageBroker
	config config.PublisherConfig
}

func newRabbitPublisher(broker messageBroker, publisherConfig config.PublisherConfig) (*RabbitPublisher, error) {
	err := broker.DeclareExchanges([]communication.ExchangeDeclarationConfig{publisherConfig.Exchange})
	if err != nil {
		return nil, err
	}

	log.Infof("[publisher: rabbitmq][exchange: %s][status: OK] exchange declared correctly!", publisherConfig.Exchange.Name)
	return &RabbitPublisher{
		broker: broker,
		config: publisherConfig,
	}, nil
}

// Publish sends summary to the configured exchange. The publication is cancelled after
// the configured timeout
func (rp *RabbitPublisher) Publish(ctx context.Context, summary *report.Summary) error {
	message, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshalling summary: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(rp.config.TimeoutSecs)*time.Second)
	defer cancel()

	err = rp.broker.PublishMessageInExchange(ctx, rp.config.Exchange.Name, rp.config.RoutingKey, message, rp.config.ContentType)
	if err != nil {
		return fmt.Errorf("error publishing summary of run %s: %w", summary.Metadata.GetRunID(), err)
	}

	log.Debugf("[publisher: rabbitmq][run_id: %s][status: OK] summary published", summary.Metadata.GetRunID())
	return nil
}

func (rp *RabbitPublisher) Close() error {
	return rp.broker.KillBadBunny()
}

package gateway

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/constants"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/internal/pkg/nsq"
)

// NotifyGateway publishes match notifications over NSQ
type NotifyGateway struct {
	producer *nsq.Producer
}

// NewNotifyGateway creates a new notification gateway
func NewNotifyGateway(producer *nsq.Producer) *NotifyGateway {
	return &NotifyGateway{producer: producer}
}

// SendMatchNotification publishes the notification to the match topic
func (g *NotifyGateway) SendMatchNotification(_ context.Context, notification models.MatchNotification) error {
	return g.producer.Publish(constants.TopicMatchNotify, notification)
}

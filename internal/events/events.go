package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/kafka"
	"streakhub/infras/otel"
	"streakhub/shared/constant"
	"streakhub/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeGoalCompleted   = "goal_completed"
	TypeWorkspaceJoined = "workspace_joined"
)

// ActivityEvent is published to the activity topic whenever a user completes
// a goal or joins a workspace. Downstream consumers build workspace feeds
// from these.
type ActivityEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	SubjectID  string    `json:"subject_id"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReminderEvent is published per recipient by the daily reminder job. An
// external mail worker consumes the topic and sends the actual email.
type ReminderEvent struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	GoalTitles  []string  `json:"goal_titles"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Publisher interface {
	PublishActivity(ctx context.Context, event ActivityEvent) error
	PublishReminder(ctx context.Context, event ReminderEvent) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) PublishActivity(ctx context.Context, event ActivityEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	scope.SetAttributes(map[string]any{
		"event.type":    event.Type,
		"event.user_id": event.UserID,
	})

	message := kafka.Message{
		Key:   event.UserID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.ActivityTopic, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish activity event")

		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	return nil
}

func (p *publisherImpl) PublishReminder(ctx context.Context, event ReminderEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.GeneratedAt.IsZero() {
		event.GeneratedAt = timezone.Now()
	}

	scope.SetAttribute("event.user_id", event.UserID)

	message := kafka.Message{
		Key:   event.UserID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.ReminderTopic, message); err != nil {
		log.Error().Err(err).Str("user_id", event.UserID).Msg("failed to publish reminder event")

		return fmt.Errorf("failed to publish reminder event: %w", err)
	}

	return nil
}

package kafka

import (
	"context"
	log "log/slog"
	"strconv"

	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/redis"

	"github.com/IBM/sarama"
)

type InteractionHandler struct{}

func NewInteractionHandler() *InteractionHandler {
	return &InteractionHandler{}
}

func (s *InteractionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer setup")
	return nil
}

func (s *InteractionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer cleanup")
	return nil
}

func (s *InteractionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-interaction consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-interaction process batch error", "err", err)
		return err
	}
	return nil
}

func (s *InteractionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToInteractionEvent(msg)
	if err != nil {
		return err
	}

	switch event.Type {
	case EventTypeView:
		return s.handleView(ctx, event)
	case EventTypeShare:
		return s.handleShare(ctx, event)
	default:
		return nil
	}
}

// handleView menaikkan counter view di Redis dan menandai post sebagai
// dirty agar job sinkronisasi menulisnya ke database.
func (s *InteractionHandler) handleView(ctx context.Context, event *InteractionEvent) error {
	if event.PostID == 0 {
		return nil
	}

	idStr := strconv.FormatUint(event.PostID, 10)

	if _, err := redis.Incr(ctx, consts.PostViewKey+idStr); err != nil {
		return err
	}
	if err := redis.SAdd(ctx, consts.PostDirtyKey, idStr); err != nil {
		return err
	}

	log.InfoContext(ctx, "post view counted", "postID", event.PostID)
	return nil
}

// handleShare tidak menambah hitungan (itu sudah terjadi sinkron di
// service); ia menginvalidasi cache counter pada node konsumen dan
// memastikan post masuk dirty set untuk job sinkronisasi.
func (s *InteractionHandler) handleShare(ctx context.Context, event *InteractionEvent) error {
	if event.PostID == 0 {
		return nil
	}

	idStr := strconv.FormatUint(event.PostID, 10)

	if err := redis.DeleteKey(ctx, consts.PostShareKey+idStr); err != nil {
		return err
	}
	if err := redis.SAdd(ctx, consts.PostDirtyKey, idStr); err != nil {
		return err
	}

	log.InfoContext(ctx, "post share recorded", "postID", event.PostID)
	return nil
}

package kafka

import (
	"context"
	log "log/slog"
	"time"

	"panganjawara/internal/api/config"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

type InteractionProducer interface {
	EmitView(ctx context.Context, postID uint64, viewerKey string)
	EmitShare(ctx context.Context, postID uint64, viewerKey string)
	Close() error
}

type InteractionProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewInteractionProducer(cfg *config.Config) (InteractionProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}

	return &InteractionProducerImpl{
		producer: producer,
		topic:    cfg.Kafka.InteractionTopic,
	}, nil
}

// EmitView mengirim event view; kegagalan hanya dicatat karena
// kehilangan satu hitungan view bukan kegagalan request.
func (s *InteractionProducerImpl) EmitView(ctx context.Context, postID uint64, viewerKey string) {
	s.emit(ctx, EventTypeView, postID, viewerKey)
}

// EmitShare mengirim event share ke pipeline; hitungan share-nya
// sendiri sudah ditambah sinkron di service.
func (s *InteractionProducerImpl) EmitShare(ctx context.Context, postID uint64, viewerKey string) {
	s.emit(ctx, EventTypeShare, postID, viewerKey)
}

func (s *InteractionProducerImpl) emit(ctx context.Context, eventType string, postID uint64, viewerKey string) {
	event := InteractionEvent{
		Type:      eventType,
		PostID:    postID,
		ViewerKey: viewerKey,
		At:        time.Now().Unix(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "marshal interaction event failed", "type", eventType, "postID", postID, "err", err)
		return
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(viewerKey),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		log.ErrorContext(ctx, "send interaction event failed", "type", eventType, "postID", postID, "err", err)
	}
}

func (s *InteractionProducerImpl) Close() error {
	return s.producer.Close()
}

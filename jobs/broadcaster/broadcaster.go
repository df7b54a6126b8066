// Package broadcaster publishes store mutation events to Kafka.
//
// There is no durable log behind the store, so events flow through an
// in-process queue: Publish enqueues without blocking, and Run drains
// the queue through a synchronous producer. An event that cannot be
// queued is dropped; the store path never waits on Kafka.
package broadcaster

import (
	"context"
	"encoding/json"
	"log"

	"github.com/IBM/sarama"

	"numberd/service"
)

const defaultQueueSize = 1024

type Broadcaster struct {
	producer sarama.SyncProducer
	topic    string
	queue    chan service.Event
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return newWithProducer(producer, topic), nil
}

func newWithProducer(producer sarama.SyncProducer, topic string) *Broadcaster {
	return &Broadcaster{
		producer: producer,
		topic:    topic,
		queue:    make(chan service.Event, defaultQueueSize),
	}
}

// ------------------------------------------------
// PUBLISH (store side)
// ------------------------------------------------

// Publish enqueues an event for delivery. It never blocks; when the
// queue is full the event is dropped and counted against the log.
func (b *Broadcaster) Publish(ev service.Event) {
	select {
	case b.queue <- ev:
	default:
		log.Printf("[broadcaster] queue full, dropped %s event", ev.Type)
	}
}

// ------------------------------------------------
// DELIVERY LOOP
// ------------------------------------------------

func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-b.queue:
			b.send(ev)
		}
	}
}

func (b *Broadcaster) send(ev service.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[broadcaster] encode failed: %v", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := b.producer.SendMessage(msg); err != nil {
		log.Printf("[broadcaster] send failed: %v", err)
	}
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

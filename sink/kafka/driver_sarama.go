package kafka

import (
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"fieldcfg/internal/logging"
	"fieldcfg/internal/report"
	"fieldcfg/sink"
)

type Config struct {
	Brokers      []string      `koanf:"brokers"`
	Topic        string        `koanf:"topic"`
	RequiredAcks int16         `koanf:"required_acks"` // 0,1,-1
	Version      string        `koanf:"version"`
	Timeout      time.Duration `koanf:"timeout"`
}

type driver struct {
	cfg Config
	p   sarama.SyncProducer
}

// NewWithProducer builds a sink around an existing producer.
func NewWithProducer(p sarama.SyncProducer, topic string) sink.Adapter {
	return &driver{cfg: Config{Topic: topic}, p: p}
}

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: want Config, got %T", c)
	}
	if len(cfg.Brokers) == 0 {
		return errors.New("kafka-sink: no brokers")
	}
	if cfg.Topic == "" {
		return errors.New("kafka-sink: no topic")
	}
	d.cfg = cfg

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.RequiredAcks)
	sc.Producer.Return.Successes = true
	if cfg.Timeout > 0 {
		sc.Producer.Timeout = cfg.Timeout
	}
	if cfg.Version != "" {
		ver, err := sarama.ParseKafkaVersion(cfg.Version)
		if err != nil {
			return fmt.Errorf("kafka-sink: %w", err)
		}
		sc.Version = ver
	}
	var err error
	d.p, err = sarama.NewSyncProducer(cfg.Brokers, sc)
	return err
}

// Push publishes the report keyed by its id.
func (d *driver) Push(r *report.Report) error {
	if d.p == nil {
		return errors.New("kafka-sink: not configured")
	}
	raw, err := r.Marshal()
	if err != nil {
		return err
	}
	part, off, err := d.p.SendMessage(&sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Key:   sarama.StringEncoder(r.ID.String()),
		Value: sarama.ByteEncoder(raw),
	})
	if err != nil {
		return fmt.Errorf("kafka-sink: publish report %s: %w", r.ID, err)
	}
	logging.L().Debug("report published", "topic", d.cfg.Topic, "partition", part, "offset", off, "report", r.ID.String())
	return nil
}

func (d *driver) Close() error {
	if d.p == nil {
		return nil
	}
	err := d.p.Close()
	d.p = nil
	return err
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }

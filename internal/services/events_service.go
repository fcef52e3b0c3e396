package services

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Queue receiving audit events for imports and generations.
const auditQueueName = "promoforge_audit"

// EventsService publishes audit events to RabbitMQ. The broker is optional:
// when it is unreachable the server runs without event publishing.
type EventsService struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewEventsService() (*EventsService, error) {
	host := getEnv("RABBITMQ_HOST", "localhost")
	port := getEnv("RABBITMQ_PORT", "5672")
	user := getEnv("RABBITMQ_USER", "guest")
	pass := getEnv("RABBITMQ_PASS", "guest")

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		auditQueueName, // name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logrus.Info("Events service initialized")
	return &EventsService{
		conn:    conn,
		channel: channel,
	}, nil
}

// PublishImportCompleted records a finished roster import
func (s *EventsService) PublishImportCompleted(userID, filename string, imported int) error {
	return s.publish(map[string]interface{}{
		"event":    "import_completed",
		"user_id":  userID,
		"filename": filename,
		"imported": imported,
	})
}

// PublishGenerationCompleted records a finished content generation
func (s *EventsService) PublishGenerationCompleted(userID string, campaignType string, variations int) error {
	return s.publish(map[string]interface{}{
		"event":         "generation_completed",
		"user_id":       userID,
		"campaign_type": campaignType,
		"variations":    variations,
	})
}

func (s *EventsService) publish(message map[string]interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = s.channel.Publish(
		"",             // exchange
		auditQueueName, // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close closes the RabbitMQ connection
func (s *EventsService) Close() error {
	if s.channel != nil {
		if err := s.channel.Close(); err != nil {
			logrus.Warnf("Error closing channel: %v", err)
		}
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			logrus.Warnf("Error closing connection: %v", err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

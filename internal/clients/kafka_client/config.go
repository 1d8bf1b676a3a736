package kafka_client

import (
	"os"
	"time"
)

const (
	KAFKA_TOPIC_ANALYSIS_REQUESTS = "analysis-requests" // raw text fragments waiting to be analyzed
	KAFKA_TOPIC_ANALYSIS_RESULTS  = "analysis-results"  // completed analysis results
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)

type KafkaConfig struct {
	Broker  string
	GroupID string
	Topic   string
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func GetKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Broker:  getEnv("KAFKA_BROKER", "localhost:29092"),
		GroupID: getEnv("KAFKA_CONSUMER_GROUP_ID", "marketpulse-analyzer-group"),
		Topic:   getEnv("KAFKA_CONSUMER_TOPIC", KAFKA_TOPIC_ANALYSIS_REQUESTS),
	}
}

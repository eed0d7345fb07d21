package kafka

// Config holds Kafka connection parameters for the event producer.
type Config struct {
	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	ClientID string
	Brokers  []string

	// TLS enables TLS for broker connections.
	TLS         bool
	SASLEnabled bool
}

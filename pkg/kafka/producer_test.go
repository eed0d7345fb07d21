package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p, err := NewProducer(Config{
		Brokers:  []string{"localhost:9092", "localhost:9093"},
		ClientID: "signalgraph",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.brokers)
	assert.Empty(t, p.writers)
	assert.Nil(t, p.transport.TLS)
	assert.Nil(t, p.transport.SASL)
	assert.Equal(t, "signalgraph", p.transport.ClientID)
}

func TestNewProducer_TLSAndSASL(t *testing.T) {
	tests := []struct {
		name      string
		mechanism string
		wantErr   bool
	}{
		{name: "plain", mechanism: "PLAIN"},
		{name: "default is plain", mechanism: ""},
		{name: "scram sha256", mechanism: "SCRAM-SHA-256"},
		{name: "scram sha512", mechanism: "SCRAM-SHA-512"},
		{name: "unknown mechanism", mechanism: "GSSAPI", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProducer(Config{
				Brokers:       []string{"kafka:9092"},
				TLS:           true,
				SASLEnabled:   true,
				SASLMechanism: tt.mechanism,
				SASLUsername:  "user",
				SASLPassword:  "secret",
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p.transport.TLS)
			assert.NotNil(t, p.transport.SASL)
		})
	}
}

func TestProducer_WriterIsCachedPerTopic(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	require.NoError(t, err)

	w1 := p.writerFor("signalgraph.events")
	w2 := p.writerFor("signalgraph.events")
	w3 := p.writerFor("other")

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
	assert.Equal(t, "signalgraph.events", w1.Topic)
	assert.Len(t, p.writers, 2)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}

func TestProducer_PublishNothingIsNoop(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), "signalgraph.events"))
	assert.Empty(t, p.writers)
}

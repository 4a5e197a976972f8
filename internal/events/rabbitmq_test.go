package events

import (
	"sync"
	"testing"
)

func TestPublishEventWhileDisconnected(t *testing.T) {
	client := &RabbitMQClient{connectionURI: "amqp://unused"}

	if err := client.PublishEvent(string(UserNotified), []byte(`{}`)); err == nil {
		t.Error("publishing without a connection must fail")
	}
}

func TestClientStateConcurrentAccess(t *testing.T) {
	client := &RabbitMQClient{connectionURI: "amqp://unused"}

	// Publishers race the connection-state writers; the mutex must keep this
	// safe even while disconnected.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = client.PublishEvent(string(AccessDecided), []byte(`{}`))
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.Close()
		}()
	}
	wg.Wait()

	if err := client.PublishEvent(string(AccessDecided), []byte(`{}`)); err == nil {
		t.Error("closed client must refuse to publish")
	}
}

// Sensor Simulator - synthetic sensor traffic for Panel Gate
//
// Publishes fake sensor readings to the broker so the gateway's
// ingestion path can be exercised without wiring real hardware:
//
//	sensorsim -host 127.0.0.1 -sensor motion -message "Motion detected!" -count 5
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nerrad567/panelgate/internal/infrastructure/config"
	"github.com/nerrad567/panelgate/internal/infrastructure/logging"
	"github.com/nerrad567/panelgate/internal/infrastructure/mqtt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	host := flag.String("host", "127.0.0.1", "MQTT broker host")
	port := flag.Int("port", 1883, "MQTT broker port")
	username := flag.String("username", "", "MQTT username")
	password := flag.String("password", "", "MQTT password")
	sensor := flag.String("sensor", "motion", "sensor name, published under /sensors/<name>")
	message := flag.String("message", "Motion detected!", "payload text")
	count := flag.Int("count", 1, "number of messages to publish")
	interval := flag.Duration("interval", time.Second, "delay between messages")
	qos := flag.Int("qos", 1, "MQTT QoS level (0-2)")
	flag.Parse()

	log := logging.Default()

	client, err := mqtt.Connect(config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     *host,
			Port:     *port,
			ClientID: fmt.Sprintf("sensorsim-%d", os.Getpid()),
		},
		Auth: config.MQTTAuthConfig{
			Username: *username,
			Password: *password,
		},
		QoS: *qos,
	})
	if err != nil {
		return fmt.Errorf("connecting to broker: %w", err)
	}
	defer client.Close()

	var topics mqtt.Topics
	topic := topics.Sensor(*sensor)

	for i := 0; i < *count; i++ {
		if i > 0 {
			time.Sleep(*interval)
		}
		if err := client.PublishString(topic, *message, byte(*qos), false); err != nil {
			return fmt.Errorf("publishing message %d: %w", i+1, err)
		}
		log.Info("published sensor event", "topic", topic, "payload", *message)
	}

	return nil
}

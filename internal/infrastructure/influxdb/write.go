package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteSensorEvent records a single inbound sensor message.
//
// The write is non-blocking; data is batched and sent asynchronously.
// The topic is a tag (low cardinality: one per sensor), the payload a field.
//
// Parameters:
//   - topic: The sensor topic the message arrived on (e.g., "/sensors/motion")
//   - payload: The raw message payload as a string
//
// Example:
//
//	client.WriteSensorEvent("/sensors/motion", "Motion detected!")
func (c *Client) WriteSensorEvent(topic string, payload string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"sensor_event",
		map[string]string{
			"topic": topic,
		},
		map[string]interface{}{
			"payload": payload,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteCommand records an outbound device command for later analysis.
//
// Parameters:
//   - topic: The device topic the command was published to
//   - verb: The command verb (lock, unlock, arm, disarm)
//   - subject: The operator who issued the command
func (c *Client) WriteCommand(topic, verb, subject string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"device_command",
		map[string]string{
			"topic": topic,
			"verb":  verb,
		},
		map[string]interface{}{
			"subject": subject,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// Package mqtt provides MQTT client connectivity for Panel Gate.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// MQTT is the bridge between the gateway and the physical installation:
// sensors publish events into /sensors/#, and the lock controller
// consumes commands from /devices/lock.
//
//	Sensors → MQTT Broker → Panel Gate → MQTT Broker → Lock Controller
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.SensorWildcard(), 1,
//	    func(topic string, payload []byte) error {
//	        log.Printf("Received: %s = %s", topic, payload)
//	        return nil
//	    })
//
//	client.PublishString(mqtt.Topics{}.DeviceLock(), "unlock", 1, false)
package mqtt

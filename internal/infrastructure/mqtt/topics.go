package mqtt

// Transport topics used by the gateway.
//
// The sensor and device topics are fixed by the devices deployed in the
// field: sensors publish under /sensors/<name> and the lock controller
// listens on /devices/lock. Only the system status topic is namespaced
// under the gateway's own prefix.
const (
	// topicSensorWildcard matches every sensor in the namespace.
	topicSensorWildcard = "/sensors/#"

	// topicDeviceLock is the command topic for the lock controller.
	topicDeviceLock = "/devices/lock"

	// topicSystemStatus carries gateway online/offline status and the LWT.
	topicSystemStatus = "panelgate/system/status"

	// topicSensorPrefix is the base for individual sensor topics.
	topicSensorPrefix = "/sensors/"
)

// Topics provides builders for Panel Gate MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
type Topics struct{}

// SensorWildcard returns the wildcard subscription covering all sensors.
//
// Example: /sensors/#
func (Topics) SensorWildcard() string {
	return topicSensorWildcard
}

// Sensor returns the topic for a single named sensor.
//
// Example: /sensors/motion
func (Topics) Sensor(name string) string {
	return topicSensorPrefix + name
}

// DeviceLock returns the command topic for the lock controller.
//
// Example: /devices/lock
func (Topics) DeviceLock() string {
	return topicDeviceLock
}

// SystemStatus returns the gateway status topic (also used for the LWT).
//
// Example: panelgate/system/status
func (Topics) SystemStatus() string {
	return topicSystemStatus
}

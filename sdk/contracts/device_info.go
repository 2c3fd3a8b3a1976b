package contracts

// DeviceInfo describes a registered buzzer.
type DeviceInfo struct {
	Name         string   // Registered name.
	Capabilities []string // Bound operations, see the Cap* constants.
	Attributes   []string // Attribute names exposed by the registry.
}

package reply

const (
	VarietyRandom = "random"
	VarietyFirst  = "first"
	VarietyOff    = "off"
)

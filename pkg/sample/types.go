package sample

// Sample describes one measurement emitted by the multi-tenant simulator.
// The raw field text for processing time and context switch cost is kept
// alongside the parsed values so grouping and output file names use the
// literal input text.
type Sample struct {
	Distribution  string
	ProcTime      float64
	ProcTimeLabel string
	CSwitch       float64
	CSwitchLabel  string
	Tenants       int
	Throughput    float64
}

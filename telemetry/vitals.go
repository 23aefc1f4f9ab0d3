package telemetry

// VitalsRecord is one tick of an agent's internal state.
type VitalsRecord struct {
	Tick        int64   `csv:"tick"`
	Temperature float64 `csv:"temperature"`
	Resource    float64 `csv:"resource"`
}

// VitalsLog is the append-only per-tick history of an agent's
// temperature and food store, kept for plotting and post-mortem
// inspection. It stays valid after the agent dies.
type VitalsLog struct {
	records []VitalsRecord
}

// NewVitalsLog creates an empty vitals log.
func NewVitalsLog() *VitalsLog {
	return &VitalsLog{}
}

// Append records one tick of vitals.
func (vl *VitalsLog) Append(tick int64, temperature, resource float64) {
	vl.records = append(vl.records, VitalsRecord{
		Tick:        tick,
		Temperature: temperature,
		Resource:    resource,
	})
}

// Records returns the full history in tick order.
func (vl *VitalsLog) Records() []VitalsRecord {
	return vl.records
}

// Len returns the number of recorded ticks.
func (vl *VitalsLog) Len() int {
	return len(vl.records)
}

// Temperatures returns the temperature series in tick order.
func (vl *VitalsLog) Temperatures() []float64 {
	out := make([]float64, len(vl.records))
	for i, r := range vl.records {
		out[i] = r.Temperature
	}
	return out
}

// Resources returns the food-store series in tick order.
func (vl *VitalsLog) Resources() []float64 {
	out := make([]float64, len(vl.records))
	for i, r := range vl.records {
		out[i] = r.Resource
	}
	return out
}

package metrics

type PeakEntities struct {
	name string
	peak int
}

func NewPeakEntities() *PeakEntities {
	return &PeakEntities{name: "peak_entities"}
}

func (p *PeakEntities) Name() string { return p.name }

func (p *PeakEntities) Observe(s Sample) {
	p.peak = max(p.peak, s.Counts.Total())
}

func (p *PeakEntities) Value() float64 { return float64(p.peak) }

func (p *PeakEntities) Reset() { p.peak = 0 }

type MeanEntities struct {
	name    string
	sum     float64
	samples int
}

func NewMeanEntities() *MeanEntities {
	return &MeanEntities{name: "mean_entities"}
}

func (m *MeanEntities) Name() string { return m.name }

func (m *MeanEntities) Observe(s Sample) {
	if !s.Drawn {
		return
	}
	m.sum += float64(s.Counts.Total())
	m.samples++
}

func (m *MeanEntities) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanEntities) Reset() {
	m.sum = 0
	m.samples = 0
}

// PeakCreatures tracks the largest jellyfish population seen.
type PeakCreatures struct {
	name string
	peak int
}

func NewPeakCreatures() *PeakCreatures {
	return &PeakCreatures{name: "peak_creatures"}
}

func (p *PeakCreatures) Name() string { return p.name }

func (p *PeakCreatures) Observe(s Sample) {
	p.peak = max(p.peak, s.Counts.Creatures)
}

func (p *PeakCreatures) Value() float64 { return float64(p.peak) }

func (p *PeakCreatures) Reset() { p.peak = 0 }

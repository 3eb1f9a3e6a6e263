package scene

// DefaultStep is the progress added on every Update.
const DefaultStep = 0.02

// Scene is one animated grid cell.
type Scene interface {
	Render()
	Update()
	ID() int
	Kind() string
	Progress() float64
	Describe() Descriptor
}

// Descriptor summarises a scene for logs, manifests and status lines.
type Descriptor struct {
	ID                int       `json:"id" yaml:"id"`
	Kind              string    `json:"kind" yaml:"kind"`
	Width             int       `json:"width" yaml:"width"`
	Height            int       `json:"height" yaml:"height"`
	Curve             string    `json:"curve,omitempty" yaml:"curve,omitempty"`
	Params            []float64 `json:"params,omitempty" yaml:"params,omitempty"`
	Thickness         float64   `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Atoms             int       `json:"atoms,omitempty" yaml:"atoms,omitempty"`
	ColourConnections bool      `json:"colour_connections,omitempty" yaml:"colour_connections,omitempty"`
}

// Progress is a scene-local monotonic clock fed to curves as t.
type Progress struct {
	value float64
	step  float64
}

func NewProgress(step float64) Progress {
	if step <= 0 {
		step = DefaultStep
	}
	return Progress{step: step}
}

// Advance adds one step and returns the new value.
func (p *Progress) Advance() float64 {
	p.value += p.step
	return p.value
}

func (p Progress) Value() float64 { return p.value }
func (p Progress) Step() float64  { return p.step }

// Counter hands out monotonically increasing ids.
type Counter struct {
	next int
}

func (c *Counter) Next() int {
	id := c.next
	c.next++
	return id
}

// Peek returns the id the next call to Next will return.
func (c *Counter) Peek() int { return c.next }

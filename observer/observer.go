package observer

import "go.uber.org/zap"

// Observer receives pushed state changes from a subject.
type Observer interface {
	// Update delivers the subject's new datum.
	Update(data uint64)
}

// Model is the subject: one datum, many dependents.
type Model struct {
	data      uint64
	observers []Observer
}

// NewModel returns a subject with no observers.
func NewModel() *Model {
	return &Model{}
}

// Register adds o to the notification list.
func (m *Model) Register(o Observer) {
	m.observers = append(m.observers, o)
}

// Unregister removes o from the notification list. Unknown observers
// are ignored.
func (m *Model) Unregister(o Observer) {
	for i, existing := range m.observers {
		if existing == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)

			return
		}
	}
}

// SetData stores the new datum and pushes it to every observer in
// registration order.
func (m *Model) SetData(data uint64) {
	m.data = data
	for _, o := range m.observers {
		o.Update(data)
	}
}

// Data reads the current datum.
func (m *Model) Data() uint64 { return m.data }

// View is a concrete observer: it remembers every datum it was pushed.
type View struct {
	// Name labels the view.
	Name string
	// Got holds received data in arrival order.
	Got []uint64
}

// NewView returns a named, empty view.
func NewView(name string) *View {
	return &View{Name: name}
}

// Update records the pushed datum.
func (v *View) Update(data uint64) {
	v.Got = append(v.Got, data)
}

// ZapSink forwards notifications into a zap logger: the same pattern,
// pointed at production infrastructure instead of a toy view.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink returns an observer logging every update through log.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// Update logs the pushed datum at info level.
func (s *ZapSink) Update(data uint64) {
	s.log.Info("model updated", zap.Uint64("data", data))
}

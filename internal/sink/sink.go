package sink

import "spy-data/internal/model"

// Sink receives each cycle's batch of normalized bars. This is the boundary a
// production deployment would back with a queue or table append; the shipped
// implementations write to the console and to packet files.
type Sink interface {
	Emit(bars []model.Bar) error
}

type multi []Sink

// Multi fans one Emit out to several sinks, returning the first error.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Emit(bars []model.Bar) error {
	for _, s := range m {
		if err := s.Emit(bars); err != nil {
			return err
		}
	}
	return nil
}

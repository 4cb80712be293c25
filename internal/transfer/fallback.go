package transfer

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackMover tries movers in order until one succeeds.
type FallbackMover struct {
	movers []Mover
}

func NewFallbackMover(movers ...Mover) *FallbackMover {
	return &FallbackMover{movers: movers}
}

func (f *FallbackMover) Name() string {
	names := make([]string, len(f.movers))
	for i, m := range f.movers {
		names[i] = m.Name()
	}
	return "fallback(" + strings.Join(names, ",") + ")"
}

func (f *FallbackMover) Move(src, dst string) (*Result, error) {
	var errs []string
	for _, m := range f.movers {
		result, err := m.Move(src, dst)
		if err == nil {
			return result, nil
		}
		// Nothing later in the chain can help with a missing source, and a
		// copy that could not delete its source has already placed the file.
		if errors.Is(err, ErrSourceNotFound) || errors.Is(err, ErrSourceNotRemoved) {
			return result, err
		}
		errs = append(errs, fmt.Sprintf("%s: %v", m.Name(), err))
	}
	return nil, fmt.Errorf("all movers failed: %s", strings.Join(errs, "; "))
}

package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"spy-data/internal/model"
)

// ConsoleSink prints each batch as human-readable JSON blocks.
type ConsoleSink struct {
	Out io.Writer // defaults to stdout
}

func (s ConsoleSink) writer() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s ConsoleSink) Emit(bars []model.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	w := s.writer()
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\nNEW %s DATA - %d records\n%s\n", rule, bars[0].Ticker, len(bars), rule)
	for _, b := range bars {
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}
	fmt.Fprintf(w, "%s\n\n", rule)
	return nil
}

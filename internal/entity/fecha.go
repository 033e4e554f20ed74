package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// The backend serializes LocalDateTime without a zone.
var fechaLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Fecha is a timestamp that tolerates the backend's zone-less layouts.
type Fecha struct {
	time.Time
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		f.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		f.Time = time.Time{}
		return nil
	}
	for _, layout := range fechaLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			f.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha %q: unknown layout", s)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Format("2006-01-02T15:04:05"))
}

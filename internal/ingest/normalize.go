package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bizpulse/backend/internal/model"
)

// dateLayouts are tried in order when coercing string dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"Jan 02 2006",
	"Jan 2 2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"02/01/06",
	"2/1/06",
}

// CoerceDate converts the loosely typed date representations seen in client
// payloads into a day-granularity time. Accepted shapes are RFC3339 or
// common statement date strings, epoch seconds, and serialized timestamp
// objects of the form {"seconds": n}. Anything else yields the zero time.
func CoerceDate(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return model.Day(d)
	case string:
		return parseDateString(d)
	case float64:
		if !isFinite(d) || d <= 0 {
			return time.Time{}
		}
		return model.Day(time.Unix(int64(d), 0).UTC())
	case int64:
		if d <= 0 {
			return time.Time{}
		}
		return model.Day(time.Unix(d, 0).UTC())
	case json.Number:
		if n, err := d.Int64(); err == nil {
			return CoerceDate(n)
		}
		if f, err := d.Float64(); err == nil {
			return CoerceDate(f)
		}
	case map[string]any:
		if secs, ok := d["seconds"]; ok {
			return CoerceDate(secs)
		}
	}
	return time.Time{}
}

func parseDateString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() < 100 {
				t = t.AddDate(2000, 0, 0)
			}
			return model.Day(t)
		}
	}
	return time.Time{}
}

// CoerceAmount converts a loosely typed amount to a finite float64.
// Strings may carry currency symbols and thousands separators.
func CoerceAmount(v any) (float64, bool) {
	switch a := v.(type) {
	case float64:
		return a, isFinite(a)
	case int64:
		return float64(a), true
	case json.Number:
		f, err := a.Float64()
		return f, err == nil && isFinite(f)
	case string:
		s := strings.TrimSpace(a)
		s = strings.ReplaceAll(s, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && isFinite(f)
	}
	return 0, false
}

// Date is a JSON date field that accepts every shape CoerceDate does:
// RFC3339 or common statement date strings, epoch seconds, and serialized
// timestamp objects of the form {"seconds": n}. The decoded value is day
// granularity UTC. A null leaves the zero time; an unrecognizable value is
// a decode error.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	t := CoerceDate(v)
	if t.IsZero() {
		return fmt.Errorf("unrecognized date %s", data)
	}
	d.Time = t
	return nil
}

// Amount is a JSON amount field that accepts numbers and the string forms
// CoerceAmount does, currency symbols and thousands separators included.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	f, ok := CoerceAmount(v)
	if !ok {
		return fmt.Errorf("unrecognized amount %s", data)
	}
	*a = Amount(f)
	return nil
}

// decodeLoose decodes a raw JSON value keeping numbers as json.Number so
// large epoch values survive the round trip.
func decodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// SanitizeTransactions drops records the engines cannot reason about,
// non-finite amounts and zero dates, and normalizes surviving dates to
// UTC midnight.
func SanitizeTransactions(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !isFinite(t.Amount) {
			continue
		}
		if t.Date.IsZero() {
			continue
		}
		t.Date = model.Day(t.Date)
		out = append(out, t)
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

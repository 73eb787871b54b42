package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// lookup resolves a JSONPath against the decoded payload. Missing keys,
// nulls along the way and type mismatches all read as absent.
func lookup(doc interface{}, path string) interface{} {
	if doc == nil {
		return nil
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	return v
}

// asString coerces scalar JSON values to trimmed text. Objects, arrays and
// null read as "".
func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asBool accepts JSON booleans and the usual textual/numeric spellings.
func asBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	default:
		return false
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok && m != nil
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

// firstString returns the first non-empty value among keys.
func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// Bounds on an accepted amount. Rendering a decimal costs time proportional to
// its exponent, so anything outside these is treated as not a number.
const (
	maxAmountExponent = 32
	maxAmountBits     = 128
)

// parseDecimal never fails: anything that is not a finite number of sane
// magnitude yields an invalid NullDecimal.
func parseDecimal(v interface{}) decimal.NullDecimal {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.NullDecimal{}
		}
		return boundedDecimal(decimal.NewFromFloat(t))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(t)))
	default:
		return decimal.NullDecimal{}
	}
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return boundedDecimal(d)
}

func boundedDecimal(d decimal.Decimal) decimal.NullDecimal {
	exp := d.Exponent()
	if exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.NullDecimal{}
	}
	if d.Coefficient().BitLen() > maxAmountBits {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// DateLayout is the en-US short date used for every displayed date.
const DateLayout = "01/02/2006"

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
const epochMillisThreshold = 1e11

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Epoch seconds that still format as a four-digit year (0001 through 9999).
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

// formatDate renders ISO-8601 text or an epoch number as MM/DD/YYYY in UTC.
// Text that is not a recognised date, and epochs outside years 1-9999, are
// returned unchanged.
func formatDate(v interface{}) string {
	var epoch float64
	var raw string
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
		f, err := t.Float64()
		if err != nil {
			return raw
		}
		epoch = f
	case float64:
		raw = strconv.FormatFloat(t, 'g', -1, 64)
		epoch = t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return ""
		}
		for _, layout := range isoLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC().Format(DateLayout)
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return s
		}
		raw = s
		epoch = f
	default:
		return ""
	}
	if math.IsNaN(epoch) || math.IsInf(epoch, 0) {
		return ""
	}
	secs := epoch
	if math.Abs(epoch) > epochMillisThreshold {
		secs = epoch / 1000
	}
	if secs < minEpochSeconds || secs > maxEpochSeconds {
		return raw
	}
	if math.Abs(epoch) > epochMillisThreshold {
		return time.UnixMilli(int64(epoch)).UTC().Format(DateLayout)
	}
	return time.Unix(int64(epoch), 0).UTC().Format(DateLayout)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // source maps are unordered once decoded
	return keys
}

// stringList accepts an array of strings or of objects carrying one of keys.
func stringList(v interface{}, keys ...string) []string {
	out := []string{}
	for _, it := range asSlice(v) {
		var s string
		switch e := it.(type) {
		case map[string]interface{}:
			s = firstString(e, keys...)
		default:
			s = asString(e)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func describe(v interface{}) string {
	if v == nil {
		return ""
	}
	if s := asString(v); s != "" {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

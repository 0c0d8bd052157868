package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// family is a counter or gauge keyed by its rendered label set. Families
// without labels hold a single value under "".
type family struct {
	name   string
	help   string
	kind   string
	labels []string

	mu     sync.Mutex
	values map[string]float64
}

func newCounter(name, help string, labels ...string) *family {
	return &family{name: name, help: help, kind: "counter", labels: labels, values: map[string]float64{}}
}

func newGauge(name, help string, labels ...string) *family {
	return &family{name: name, help: help, kind: "gauge", labels: labels, values: map[string]float64{}}
}

func (f *family) add(delta float64, values ...string) {
	key := labelSet(f.labels, values)
	f.mu.Lock()
	f.values[key] += delta
	f.mu.Unlock()
}

func (f *family) set(v float64, values ...string) {
	key := labelSet(f.labels, values)
	f.mu.Lock()
	f.values[key] = v
	f.mu.Unlock()
}

func (f *family) WritePrometheus(w io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := writeHeader(w, f.name, f.help, f.kind); err != nil {
		return err
	}
	for _, key := range sortedKeys(f.values) {
		if _, err := fmt.Fprintf(w, "%s%s %f\n", f.name, key, f.values[key]); err != nil {
			return err
		}
	}
	return nil
}

// latency is a histogram of request durations in seconds.
type latency struct {
	name    string
	help    string
	labels  []string
	buckets []float64

	mu     sync.Mutex
	series map[string]*latencySeries
}

type latencySeries struct {
	counts []uint64 // cumulative per bucket, then +Inf
	sum    float64
}

func newLatency(name, help string, labels []string, buckets []float64) *latency {
	return &latency{name: name, help: help, labels: labels, buckets: buckets, series: map[string]*latencySeries{}}
}

func (l *latency) observe(seconds float64, values ...string) {
	key := labelSet(l.labels, values)
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.series[key]
	if !ok {
		s = &latencySeries{counts: make([]uint64, len(l.buckets)+1)}
		l.series[key] = s
	}
	s.sum += seconds
	for i, upper := range l.buckets {
		if seconds <= upper {
			s.counts[i]++
		}
	}
	s.counts[len(l.buckets)]++
}

func (l *latency) WritePrometheus(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := writeHeader(w, l.name, l.help, "histogram"); err != nil {
		return err
	}
	keys := make([]string, 0, len(l.series))
	for k := range l.series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		s := l.series[key]
		for i, upper := range l.buckets {
			if _, err := fmt.Fprintf(w, "%s_bucket%s %d\n", l.name, withBound(key, fmt.Sprintf("%g", upper)), s.counts[i]); err != nil {
				return err
			}
		}
		total := s.counts[len(l.buckets)]
		if _, err := fmt.Fprintf(w, "%s_bucket%s %d\n%s_sum%s %f\n%s_count%s %d\n",
			l.name, withBound(key, "+Inf"), total,
			l.name, key, s.sum,
			l.name, key, total); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, name, help, kind string) error {
	_, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s %s\n", name, help, name, kind)
	return err
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// labelSet renders {name="value",...}; missing values read "unknown".
func labelSet(names, values []string) string {
	if len(names) == 0 {
		return ""
	}
	pairs := make([]string, len(names))
	for i, name := range names {
		v := "unknown"
		if i < len(values) {
			v = values[i]
		}
		pairs[i] = name + `="` + labelEscaper.Replace(v) + `"`
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// withBound appends the le label to a rendered label set.
func withBound(set, le string) string {
	if set == "" {
		return `{le="` + le + `"}`
	}
	return strings.TrimSuffix(set, "}") + `,le="` + le + `"}`
}

// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Lexicon's Stats as prometheus metrics. Collection
// reads the Lexicon, so scrapes of a Lexicon that is still being mutated
// need the same external synchronization as any other reader.
type Collector struct {
	lexicon       *Lexicon
	entries       *prometheus.Desc
	internedBytes *prometheus.Desc
	buffers       *prometheus.Desc
	capacityBytes *prometheus.Desc
	retiredBytes  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a prometheus collector over l.
func NewCollector(l *Lexicon) *Collector {
	return &Collector{
		lexicon: l,
		entries: prometheus.NewDesc(
			"lexicon_entries",
			"Number of distinct interned strings.",
			nil, nil),
		internedBytes: prometheus.NewDesc(
			"lexicon_interned_bytes",
			"Total bytes copied into the arena.",
			nil, nil),
		buffers: prometheus.NewDesc(
			"lexicon_arena_buffers",
			"Arena buffer count, active plus retired.",
			nil, nil),
		capacityBytes: prometheus.NewDesc(
			"lexicon_arena_capacity_bytes",
			"Capacity of the active arena buffer.",
			nil, nil),
		retiredBytes: prometheus.NewDesc(
			"lexicon_arena_retired_bytes",
			"Bytes held by retired arena buffers.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.internedBytes
	ch <- c.buffers
	ch <- c.capacityBytes
	ch <- c.retiredBytes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.lexicon.Stats()

	buffers := st.RetiredBuffers
	if st.BufferCapacity > 0 {
		buffers++
	}

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Entries))
	ch <- prometheus.MustNewConstMetric(c.internedBytes, prometheus.GaugeValue, float64(st.InternedBytes))
	ch <- prometheus.MustNewConstMetric(c.buffers, prometheus.GaugeValue, float64(buffers))
	ch <- prometheus.MustNewConstMetric(c.capacityBytes, prometheus.GaugeValue, float64(st.BufferCapacity))
	ch <- prometheus.MustNewConstMetric(c.retiredBytes, prometheus.GaugeValue, float64(st.RetiredBytes))
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

// Config carries named tunables for the generator families below (precision
// and exponent ranges, special-value injection rate, run-length means) as a
// string-to-u64 map, keyed by name so a test can override just the knobs it
// cares about without a bespoke options struct per generator.
type Config map[string]uint64

// GetOr returns c[key] if present, def otherwise.
func (c Config) GetOr(key string, def uint64) uint64 {
	if v, ok := c[key]; ok {
		return v
	}
	return def
}

// Package config loads wikicloud settings from an optional TOML file.
//
// Every field has a default, so a missing file is not an error. A file only
// needs the keys it changes:
//
//	breakpoint = 900
//
//	[wide]
//	node_count = 600
//	per_band = { min = 2, max = 8 }
//
//	[cache]
//	backend = "redis"
//	ttl = "6h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
// Layout profiles come in two pairs. Narrow and Wide are pixel profiles for
// the page and the render command, chosen once from the viewport width;
// Terminal.Narrow and Terminal.Wide are cell profiles for the browse view.
package config

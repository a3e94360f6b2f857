// Package config loads builder-generator settings.
//
// Settings live in builder-generator.yaml (or .yml, or builder-generator.toml)
// at the module root. Every key is optional:
//
//	packages:        # package patterns to load, default ["./..."]
//	  - ./store/...
//	dir: .           # working directory the patterns are resolved in
//	workers: 0       # phase-2 parallelism, 0 means GOMAXPROCS
//	min_go_version: "1.23"
//	dry_run: false   # print what would be written
//	log_level: info  # debug, info, warn, error
//	log_format: text # text or json
//	color: auto      # auto, always, never
//	build_flags: []  # passed to the go/packages loader
//
// Command-line flags override file values.
package config

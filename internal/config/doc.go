// Package config provides the YAML schema and loader for generator
// configuration files.
//
// # Schema Overview
//
//	version: "1"
//	package: com.example
//	entry_separator: ", "
//	value_prefix: "["
//	value_suffix: "]"
//	key_value_separator: "="
//	levels: [info, error]
//	fields:
//	  - user                           # string field keyed "user"
//	  - {latency: duration}            # shorthand name: kind
//	  - name: user_id                  # full form
//	    kind: int64
//	    key: uid
//	output:
//	  dir: ./internal/logformat
//	  filename: log_format_enforcer.go
//	  comments: true
//
// # Defaults
//
// A separator that is absent (or null) takes its default: ", " between
// entries, "[" and "]" around values and "=" between key and value. A
// separator that is present as "" stays empty. A missing field kind means
// string and a missing levels list means every level.
//
// A mapping field with a "name" key is read in full form; any other
// single-key mapping is the name: kind shorthand. {name: int64} is the
// shorthand for a field called "name", while {name: user} is the full form.
package config

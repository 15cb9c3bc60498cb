// Package confloader provides configuration loading for Calculon.
//
// It uses koanf to merge configuration from several sources into a
// typed struct, and fsnotify to watch configuration files for changes.
//
// Priority (highest to lowest):
//
//  1. Environment variables (CALCULON_ prefix)
//  2. Configuration file (YAML)
//  3. Values already present in the target struct (defaults)
//
// Environment names map to keys by lowercasing, dropping the prefix and
// turning "_" into ".". A doubled "__" stands for a literal underscore:
//
//	CALCULON_SERVER_CALC_ADDR          -> server.calc.addr
//	CALCULON_SERVER_CALC_ACCEPT__RATE  -> server.calc.accept_rate
package confloader

// Package config parses the global configuration grammar: one variable per
// line as NAME=VALUE or NAME[attr,attr]=VALUE, with blank lines and
// #-comments ignored. Parsing is a single top-to-bottom pass producing an
// ordered, immutable entry list plus the symbol table eval-attributed values
// draw from.
package config

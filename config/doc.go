// Package config holds experiment parameters: defaults, validation and
// HCL experiment files.
package config

// Package config defines the go-config backed settings for the usersgql
// binary, including the static feature switch consulted before mutations.
package config

// Package settings provides the SystemSettings singleton read by admission
// control: operating hours, emergency closure and admission limits.
package settings

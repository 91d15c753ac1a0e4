// Package file stores settings in ~/.linesplit/config.toml.
package file

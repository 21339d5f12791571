// Package config manages user-level settings stored at ~/.sfp/config.yaml.
// Every key can also be set through an SFP_ prefixed environment variable,
// which takes precedence over the file.
package config

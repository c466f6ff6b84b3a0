// Package config loads service configuration from an optional YAML file
// and the environment. Environment variables always win over file values,
// so a config file can hold defaults while deployment overrides stay in
// the environment.
package config

// Package clientcli manages named connection profiles for the mintdb CLI.
//
// Profiles live in a YAML file (~/.config/mintdb/config.yaml by default),
// one of which may be marked as the default. The mintdb configure command
// writes this file; --profile selects from it.
package clientcli

// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, and the
// translation of HCL schema structs into the format-agnostic model.
package hcl

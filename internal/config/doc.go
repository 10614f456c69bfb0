// Package config defines the format-agnostic configuration model for the
// numbering engine: environment specifications, reset rules, and the
// document event stream, along with the Loader interface for reading them
// from a concrete source format.
//
// The config.Model is the single source of truth for the envgraph, counter,
// and declorder packages. It is immutable once loaded and may be shared
// across any number of export runs. A concrete Loader implementation, such
// as the HCL one, lives in a separate package.
package config

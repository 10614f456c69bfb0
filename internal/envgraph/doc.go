// Package envgraph validates environment specifications and resolves, for
// any numbered environment, its counter root and effective reset rule.
//
// The graph is built once per configuration model and cached: validation
// and resolution are pure functions over the immutable model, so a single
// Graph may serve any number of export runs. The counter engine asks it for
// roots and reset rules; the declaration orderer asks it for dependency
// edges.
package envgraph

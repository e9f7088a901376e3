// internal is internal packages for nrs.
//
// The dependencies go one way: registry and textdecode are the leaves, probe and manager use them,
// and report renders what probe returns. Only cmd/nrs wires everything together.
// The prompt and console packages know nothing about registries.
//
// The nrserr package and the testutil package are exception cases for this rule.
// These packages used by other packages.
package internal

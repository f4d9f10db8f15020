// Package partner provides the value types used by partner selection: the
// serviceability entries read from the rate index and the scored options the
// selection engine produces from them.
package partner

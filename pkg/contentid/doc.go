// Package contentid defines the package coordinates produced by the lockfile
// readers.
//
// # Overview
//
// A content ID identifies one version of one package across ecosystems:
//
//	npm/npmjs/@babel/preset-modules/0.1.6-no-external-plugins
//	pypi/pypi/-/requests/2.31.0
//	crate/cratesio/-/serde/1.0.193
//
// The five segments are type, source, namespace, name and version. Packages
// without a scope or group use [NoNamespace] ("-").
//
// # Valid and Invalid IDs
//
// Readers never drop an entry they fail to understand. Instead they return an
// [InvalidContentID] holding the raw input, next to the resolved
// [ContentID] values. Both satisfy [ID]:
//
//	for _, id := range ids {
//	    switch v := id.(type) {
//	    case contentid.ContentID:
//	        lookup(v)
//	    case contentid.InvalidContentID:
//	        report(v.Value)
//	    }
//	}
//
// # Deduplication
//
// [Distinct] removes repeated IDs while keeping first-seen order. Equality is
// by value over the whole tuple, and an InvalidContentID equals another only
// when the wrapped strings match.
package contentid

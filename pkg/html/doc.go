// Package html holds the small serialization primitives every field and form
// builds on: canonical attribute strings and the standalone label element.
// Attribute output is deterministic (keys sorted lexically) so rendered
// markup can be compared byte for byte in tests and caches.
package html

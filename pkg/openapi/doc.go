// Package openapi derives form definitions from the request bodies of OpenAPI
// operations. Documents are loaded through kin-openapi from files, an fs.FS
// or HTTP and every operation with an object request body becomes a
// definition.FormSpec keyed by its operation id.
package openapi

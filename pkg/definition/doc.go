// Package definition loads form definitions from declarative JSON or YAML
// documents. A document declares one or more forms by name:
//
//	forms:
//	  login:
//	    action: /login
//	    fields:
//	      - key: username
//	        kind: text
//	        required: true
//	        validators:
//	          - {type: length, min: 3, max: 32}
//	      - key: password
//	        kind: password
//	        required: true
//
// LoadFS walks a filesystem and collects every form into a Store.
package definition

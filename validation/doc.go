// Package validation checks JSON-LD documents against a generated
// validation schema and strips what does not conform.
//
// Validation never rejects a document for a bad optional attribute. Unknown
// properties and values of the wrong type are removed from a copy of the
// input and reported as warnings; the document stays valid as long as its
// @context and @type are acceptable and the top-level object carries every
// required property of its class. Nested typed objects that miss their own
// required properties are dropped instead.
//
//	v, err := validation.New(doc)
//	if err != nil {
//	    return err
//	}
//	res := v.Validate(jsonld)
//	if !res.Valid {
//	    for _, issue := range res.Errors() {
//	        log.Println(issue)
//	    }
//	}
package validation

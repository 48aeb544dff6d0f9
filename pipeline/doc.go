// Package pipeline runs the generation stages in order: load the
// vocabulary, query it, fold the rows into a schema document, overlay the
// required properties and write the result.
package pipeline

// Package query runs the two fixed vocabulary queries against a loaded
// triple store.
//
// The property query is the equivalent of:
//
//	SELECT ?prop (GROUP_CONCAT(DISTINCT ?label) AS ?labels)
//	             (GROUP_CONCAT(DISTINCT ?dtype) AS ?dtypes)
//	             (GROUP_CONCAT(DISTINCT ?rtype) AS ?rtypes)
//	WHERE {
//	  ?prop a rdf:Property ;
//	        schema:domainIncludes ?dtype ;
//	        rdfs:label ?label ;
//	        schema:rangeIncludes ?rtype .
//	  FILTER (?rtype IN (<range allow-list>) && ?dtype IN (<domain allow-list>)
//	          && NOT EXISTS { ?prop schema:supersededBy ?any })
//	}
//	GROUP BY ?prop ORDER BY ?prop
//
// and the subclass query of:
//
//	SELECT ?class ?parent
//	WHERE { ?class a rdfs:Class ; rdfs:subClassOf ?parent .
//	        FILTER (?class IN (<class allow-list>)) }
//	GROUP BY ?class ORDER BY ?class
//
// Both are evaluated as cayley paths. The property path starts at the
// subjects of rdf:type rdf:Property, drops the superseded ones with Except,
// and binds label, domain and range with Save; the allow-lists filter the
// tagged results. Rows come back sorted by subject IRI and grouped values
// are deduplicated and sorted.
package query

// Package schema folds vocabulary query results into the class mapping used
// as a JSON-LD validation schema.
//
// The resulting Document has the shape:
//
//	{"schema.org": {
//	    "Dataset": {
//	        "properties": {"name": {"types": ["Text"]}, ...},
//	        "requiredProperties": ["name", "description"],
//	        "parent": "CreativeWork"
//	    }, ...}}
//
// Class entries are created the first time a class shows up as a property
// domain or as a subclass, then filled in as more rows are folded. Entries
// are never removed. schema.org has no notion of required properties, so
// ApplyRequired overlays a fixed table for the classes Google's Dataset
// search cares about.
package schema

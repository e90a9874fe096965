// Package schemas embeds the JSON Schemas of the data artifacts.
package schemas

import _ "embed"

// Taxonomy validates skill taxonomy documents.
//
//go:embed taxonomy.schema.json
var Taxonomy []byte

// RoleCatalog validates role catalog documents.
//
//go:embed role_catalog.schema.json
var RoleCatalog []byte

// VectorModel validates TF-IDF model artifacts written by build-model.
//
//go:embed vector_model.schema.json
var VectorModel []byte

// CareerKnowledge validates the coach knowledge base.
//
//go:embed career_knowledge.schema.json
var CareerKnowledge []byte

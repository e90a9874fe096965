package catalog

import _ "embed"

// Built-in data used when no path is configured.
var (
	//go:embed data/skills_taxonomy.json
	DefaultTaxonomy []byte

	//go:embed data/job_roles.json
	DefaultRoleCatalog []byte

	//go:embed data/career_knowledge.json
	DefaultKnowledge []byte
)

const embeddedPath = "(embedded)"

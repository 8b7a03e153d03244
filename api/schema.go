package api

// Config is the root configuration of the reference-data engine.
// It declares the place hierarchy, name aliases, tiered data sources,
// and the facility datasets to load.
type Config struct {
	// Places are the nodes of the geographic hierarchy.
	Places []Place `hcl:"place,block"`
	// Aliases map historical or dataset-specific display names to place ids.
	Aliases []Alias `hcl:"alias,block"`
	// Sources are the tier-scoped data sources merged by cascade resolution.
	Sources []Source `hcl:"source,block"`
	// Datasets describe the facility record files to ingest.
	Datasets []Dataset `hcl:"dataset,block"`
}

// Place declares one node of the geographic hierarchy.
// The block label is the node id.
type Place struct {
	ID string `hcl:"id,label"`
	// Name is the canonical display name ("City of Vancouver").
	Name string `hcl:"name"`
	// Short is the common short form ("Vancouver"). Optional.
	Short string `hcl:"short,optional"`
	// Level is one of: planet, country, province, region, municipality,
	// community, address.
	Level string `hcl:"level"`
	// Parent is the id of the containing place. Empty only for the root.
	Parent string `hcl:"parent,optional"`
}

// Alias maps a free-text display name onto a place id. Datasets were
// authored independently and key on inconsistent names; the alias table is
// the single source of truth for resolving them.
type Alias struct {
	Name  string `hcl:"name,label"`
	Place string `hcl:"place"`
}

// Source declares a tier-scoped data source.
type Source struct {
	Name string `hcl:"name,label"`
	// Category groups sources for display ("grants", "permits", "safety").
	Category string `hcl:"category"`
	// Scope is one of: provincial, regional, municipal.
	Scope string `hcl:"scope"`
	// Keys are the scope keys the source applies to: region ids for
	// regional sources, municipal display names for municipal ones.
	// Provincial sources apply unconditionally and omit keys.
	Keys []string `hcl:"keys,optional"`
	// URL is an optional reference link.
	URL string `hcl:"url,optional"`
}

// Dataset describes one facility record file.
type Dataset struct {
	Name string `hcl:"name,label"`
	// Kind selects the concrete record type: emergency, marine, taxi,
	// waste, chamber.
	Kind string `hcl:"kind"`
	// File is the path of the data file, relative to the data directory.
	// Files ending in .db are read as SQLite; everything else as JSON.
	File string `hcl:"file"`
	// Selector is a JSONPath expression selecting the record objects
	// within a JSON file (e.g. "$.facilities[*]"). Defaults to "$[*]".
	Selector string `hcl:"selector,optional"`
	// Fields renames record fields when a dataset does not use the
	// canonical keys (latitude, longitude, type, municipality, region,
	// name). Maps canonical key -> dataset key.
	Fields map[string]string `hcl:"fields,optional"`
}

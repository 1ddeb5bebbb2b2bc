package config

const defaultCatalogName = "Shaders.xml"

var catalogNameOverride string

func CatalogNameOverride(name string) {
	catalogNameOverride = name
}

func CatalogName() string {
	if catalogNameOverride != "" {
		return catalogNameOverride
	}
	return defaultCatalogName
}

package yamlcodec

// Document type discriminators recognized by the root "document" key.
const (
	DocTypeModulemd             = "modulemd"
	DocTypeModulemdDefaults     = "modulemd-defaults"
	DocTypeModulemdTranslations = "modulemd-translations"
)

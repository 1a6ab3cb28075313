package social

import "github.com/goliatone/go-cms-social/internal/runtimeconfig"

var (
	ErrSiteScreenNameInvalid     = runtimeconfig.ErrSiteScreenNameInvalid
	ErrSiteUserIDInvalid         = runtimeconfig.ErrSiteUserIDInvalid
	ErrFeatureUnknown            = runtimeconfig.ErrFeatureUnknown
	ErrWidgetThemeInvalid        = runtimeconfig.ErrWidgetThemeInvalid
	ErrWidgetColorInvalid        = runtimeconfig.ErrWidgetColorInvalid
	ErrCacheTTLInvalid           = runtimeconfig.ErrCacheTTLInvalid
	ErrShortcodesFeatureRequired = runtimeconfig.ErrShortcodesFeatureRequired
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	SiteConfig       = runtimeconfig.SiteConfig
	FeaturesConfig   = runtimeconfig.FeaturesConfig
	ShortcodeConfig  = runtimeconfig.ShortcodeConfig
	WidgetsConfig    = runtimeconfig.WidgetsConfig
	CacheConfig      = runtimeconfig.CacheConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	ValidationConfig = runtimeconfig.ValidationConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML file over DefaultConfig. New validates the result.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}

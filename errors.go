package social

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	configInvalidCode       = "SOCIAL_CONFIG_INVALID"
	shortcodeRenderCode     = "SOCIAL_SHORTCODE_RENDER_FAILED"
	shortcodeProcessCode    = "SOCIAL_SHORTCODE_PROCESS_FAILED"
	moduleNotConfiguredCode = "SOCIAL_MODULE_NOT_CONFIGURED"
)

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "social configuration invalid").
		WithTextCode(configInvalidCode)
}

func wrapRenderError(err error, shortcode string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "shortcode render failed").
		WithTextCode(shortcodeRenderCode).
		WithMetadata(map[string]any{"shortcode": shortcode})
}

func wrapProcessError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "shortcode processing failed").
		WithTextCode(shortcodeProcessCode)
}

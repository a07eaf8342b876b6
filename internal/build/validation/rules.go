package validation

import (
	"context"
	"errors"
	"os"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

var (
	// ErrMissingConfiguration indicates the site configuration file is absent.
	ErrMissingConfiguration = errors.New("missing site configuration")
	// ErrMissingContentDirectory indicates the posts source directory is absent.
	ErrMissingContentDirectory = errors.New("missing content directory")
	// ErrMissingTemplate indicates the post or index template is absent.
	ErrMissingTemplate = errors.New("missing template")
)

// ConfigFileRule requires the site configuration file.
type ConfigFileRule struct{}

func (ConfigFileRule) Name() string { return "config_file" }

func (ConfigFileRule) Validate(_ context.Context, vctx Context) Result {
	path := vctx.Layout.ConfigPath()
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist), err == nil && info.IsDir():
		return Failure(foundationerrors.ConfigError(ErrMissingConfiguration, "site configuration not found").
			WithContext("path", path).
			Build())
	case err != nil:
		return Failure(statError(path, err))
	}
	return Success()
}

// ContentDirRule requires the content directory.
type ContentDirRule struct{}

func (ContentDirRule) Name() string { return "content_dir" }

func (ContentDirRule) Validate(_ context.Context, vctx Context) Result {
	path := vctx.Layout.ContentDir()
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist), err == nil && !info.IsDir():
		return Failure(foundationerrors.NotFoundError(ErrMissingContentDirectory, "content directory not found").
			WithContext("path", path).
			Build())
	case err != nil:
		return Failure(statError(path, err))
	}
	return Success()
}

// TemplateRule requires a template file.
type TemplateRule struct {
	Template string
	Path     func(config.Layout) string
}

// PostTemplateRule requires the post page template.
func PostTemplateRule() TemplateRule {
	return TemplateRule{Template: "post", Path: config.Layout.PostTemplatePath}
}

// IndexTemplateRule requires the index page template.
func IndexTemplateRule() TemplateRule {
	return TemplateRule{Template: "index", Path: config.Layout.IndexTemplatePath}
}

func (r TemplateRule) Name() string { return r.Template + "_template" }

func (r TemplateRule) Validate(_ context.Context, vctx Context) Result {
	path := r.Path(vctx.Layout)
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist), err == nil && info.IsDir():
		return Failure(foundationerrors.NotFoundError(ErrMissingTemplate, r.Template+" template not found").
			WithContext("path", path).
			Build())
	case err != nil:
		return Failure(statError(path, err))
	}
	return Success()
}

func statError(path string, err error) error {
	return foundationerrors.FileSystemError(err, "cannot access build input").
		WithContext("path", path).
		Build()
}

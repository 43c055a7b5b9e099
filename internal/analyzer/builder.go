package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/afero"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/javaparser"
	"spring-apidoc/internal/linker"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
	"spring-apidoc/internal/ui"
)

// FileParseError reports a controller file that was skipped
type FileParseError struct {
	File string
	Err  error
}

func (e *FileParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *FileParseError) Unwrap() error {
	return e.Err
}

// Builder runs one parse pass over a project and produces a snapshot.
// A Builder holds no state between Build calls.
type Builder struct {
	fsys  afero.Fs
	cfg   *config.Config
	bar   *ui.ProgressBar
	newID func() string
}

// NewBuilder creates a builder reading sources from fsys
func NewBuilder(fsys afero.Fs, cfg *config.Config) *Builder {
	return &Builder{
		fsys:  fsys,
		cfg:   cfg,
		newID: uuid.NewString,
	}
}

// WithProgress reports per-file progress on bar
func (b *Builder) WithProgress(bar *ui.ProgressBar) *Builder {
	b.bar = bar
	return b
}

type fileResult struct {
	endpoints []model.Endpoint
	err       error
}

// Build discovers controllers, scans them in parallel and merges the results
// in file-discovery order. A file that fails is logged and skipped; only
// discovery failures and cancellation abort the run.
func (b *Builder) Build(ctx context.Context) (*model.Snapshot, error) {
	files, err := ScanDirectory(b.fsys, b.cfg)
	if err != nil {
		return nil, err
	}

	pool := linker.NewTypePool(b.read)
	for _, path := range files {
		pool.AddFile(path, b.cfg.Project.SourceRoot)
	}
	logger.Debug("[BUILD] Type pool: %d types from %d files", pool.Len(), len(files))

	controllers := FilterControllers(files, b.cfg)
	if len(controllers) == 0 {
		logger.Info("No controller files found under %s", b.cfg.Project.RootDir)
		return model.NewSnapshot(nil, nil), nil
	}
	if b.bar != nil {
		b.bar.SetTotal(len(controllers))
	}

	types := linker.NewLinker(pool)
	mapper := iter.Mapper[string, fileResult]{MaxGoroutines: b.cfg.Analysis.Workers}
	results := mapper.Map(controllers, func(path *string) fileResult {
		if ctx.Err() != nil {
			return fileResult{err: ctx.Err()}
		}
		eps, err := b.buildFile(*path, types)
		if b.bar != nil {
			b.bar.Increment()
		}
		return fileResult{endpoints: eps, err: err}
	})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build cancelled: %w", err)
	}

	var endpoints []model.Endpoint
	var failed []string
	for i, res := range results {
		if res.err != nil {
			logger.LogParseError(controllers[i], res.err, "controller scan")
			failed = append(failed, controllers[i])
			continue
		}
		endpoints = append(endpoints, res.endpoints...)
	}

	if len(failed) > 0 {
		logger.Warn("%d controller file(s) skipped, see log for details", len(failed))
	}
	logger.Info("Extracted %d API endpoints from %d controllers", len(endpoints), len(controllers)-len(failed))

	return model.NewSnapshot(endpoints, failed), nil
}

func (b *Builder) read(path string) (string, error) {
	return ReadFile(b.fsys, path, b.cfg.Project.Encoding)
}

// buildFile scans one controller. Panics from the scanner are turned into a
// FileParseError so the rest of the batch continues.
func (b *Builder) buildFile(path string, types javaparser.TypeSource) (eps []model.Endpoint, err error) {
	defer func() {
		if r := recover(); r != nil {
			eps = nil
			err = &FileParseError{File: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	content, err := b.read(path)
	if err != nil {
		return nil, &FileParseError{File: path, Err: err}
	}

	cf, err := javaparser.ParseControllerFile(content, javaparser.Options{
		ControllerSuffix: b.cfg.Project.ControllerSuffix,
	})
	if err != nil {
		return nil, &FileParseError{File: path, Err: err}
	}

	return BuildEndpoints(path, cf, types, b.cfg.Project.ControllerSuffix, b.newID), nil
}

// BuildEndpoints turns the method spans of one scanned file into endpoints
func BuildEndpoints(path string, cf *javaparser.ControllerFile, types javaparser.TypeSource, suffix string, newID func() string) []model.Endpoint {
	folder := cf.FolderTag
	if folder == "" {
		folder = FolderFromFile(path, suffix)
	}

	endpoints := make([]model.Endpoint, 0, len(cf.Methods))
	for _, span := range cf.Methods {
		method := span.Verb
		if method == "" {
			method = model.MethodGet
		}
		responseType := span.ReturnType
		if responseType == "" {
			responseType = "void"
		}

		endpoints = append(endpoints, model.Endpoint{
			ID:           newID(),
			Path:         JoinPaths(cf.RootPath, span.Path),
			Method:       method,
			Description:  span.Comment,
			Parameters:   javaparser.ResolveParameters(span, cf, types),
			ResponseType: responseType,
			FolderTag:    folder,
			Location: model.SourceLocation{
				File:   path,
				Line:   span.Line,
				Column: span.Column,
			},
		})
	}
	return endpoints
}

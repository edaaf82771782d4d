package content

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/awc-hub/awchub/internal/parser"
	"github.com/awc-hub/awchub/internal/paths"
)

// Repository reads records from a content root with one directory per kind.
//
// Every call reads from disk; callers that want caching wrap the repository.
type Repository struct {
	root       string
	renderer   *parser.Renderer
	normalizer Normalizer
	logger     *slog.Logger
}

// Options configures a Repository.
type Options struct {
	Renderer   *parser.Renderer
	Normalizer *Normalizer
	Logger     *slog.Logger
}

// NewRepository creates a Repository rooted at root.
func NewRepository(root string, opts Options) *Repository {
	r := &Repository{
		root:       root,
		renderer:   opts.Renderer,
		normalizer: NewNormalizer(),
		logger:     opts.Logger,
	}
	if r.renderer == nil {
		r.renderer = parser.NewRenderer()
	}
	if opts.Normalizer != nil {
		r.normalizer = *opts.Normalizer
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Root returns the content root directory.
func (r *Repository) Root() string {
	return r.root
}

// Renderer returns the markdown renderer used for record bodies.
func (r *Repository) Renderer() *parser.Renderer {
	return r.renderer
}

// Load loads every record of kind, sorted for display.
func (r *Repository) Load(kind Kind) (Result[Entity], error) {
	switch kind {
	case KindTournament:
		return toEntities(r.Tournaments())
	case KindPlayer:
		return toEntities(r.Players())
	case KindLevel:
		return toEntities(r.Levels())
	case KindNews:
		return toEntities(r.News())
	}
	return Result[Entity]{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Tournaments loads tournaments newest first.
func (r *Repository) Tournaments() (Result[Tournament], error) {
	res, err := loadKind(r, KindTournament, r.decodeTournament)
	SortTournaments(res.Items)
	return res, err
}

// Players loads players ordered by nickname.
func (r *Repository) Players() (Result[Player], error) {
	res, err := loadKind(r, KindPlayer, r.decodePlayer)
	SortPlayers(res.Items)
	return res, err
}

// Levels loads levels ordered by title.
func (r *Repository) Levels() (Result[Level], error) {
	res, err := loadKind(r, KindLevel, r.decodeLevel)
	SortLevels(res.Items)
	return res, err
}

// News loads news items newest first.
func (r *Repository) News() (Result[NewsItem], error) {
	res, err := loadKind(r, KindNews, r.decodeNews)
	SortNews(res.Items)
	return res, err
}

// record is one readable file of a kind directory.
type record struct {
	path string
	stem string
	raw  []byte
}

// loadKind reads every file of kind. Per-file problems become warnings;
// only a directory that exists but cannot be listed is an error.
func loadKind[T any](r *Repository, kind Kind, decode func(rec record) (T, []parser.FieldError, error)) (Result[T], error) {
	var res Result[T]
	dir := filepath.Join(r.root, kind.Dir())

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("content directory missing", "kind", kind, "dir", dir)
			return res, nil
		}
		return res, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != kind.Ext() {
			continue
		}
		path := filepath.Join(dir, name)

		if err := paths.ValidateWithinRoot(r.root, path); err != nil {
			res.Warnings = append(res.Warnings, r.warn(kind, path, WarnOutsideRoot, err))
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			res.Warnings = append(res.Warnings, r.warn(kind, path, WarnUnreadableFile, err))
			continue
		}

		item, fieldErrs, err := decode(record{path: path, stem: paths.Stem(name), raw: raw})
		if err != nil {
			res.Warnings = append(res.Warnings, r.warn(kind, path, WarnMalformedRecord, err))
		}
		for _, fe := range fieldErrs {
			res.Warnings = append(res.Warnings, r.warn(kind, path, WarnInvalidField, fe))
		}
		res.Items = append(res.Items, item)
	}

	return res, nil
}

func (r *Repository) warn(kind Kind, path, code string, err error) Warning {
	r.logger.Debug("content record degraded", "kind", kind, "path", path, "code", code, "error", err)
	return newWarning(kind, path, code, err)
}

// decodeYAML decodes a YAML record field by field. Fields that do not fit are
// dropped and returned; a record that is not a YAML mapping resets v to its
// zero value.
func decodeYAML[T any](raw []byte, v *T) ([]parser.FieldError, error) {
	fieldErrs, err := parser.DecodeYAML(raw, v)
	if err != nil {
		var zero T
		*v = zero
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return fieldErrs, nil
}

func (r *Repository) decodeTournament(rec record) (Tournament, []parser.FieldError, error) {
	var t Tournament
	fieldErrs, err := decodeYAML(rec.raw, &t)
	r.normalizer.Tournament(&t, rec.stem)
	return t, fieldErrs, err
}

func (r *Repository) decodeLevel(rec record) (Level, []parser.FieldError, error) {
	var l Level
	fieldErrs, err := decodeYAML(rec.raw, &l)
	r.normalizer.Level(&l, rec.stem)
	return l, fieldErrs, err
}

func (r *Repository) decodePlayer(rec record) (Player, []parser.FieldError, error) {
	p, doc := parser.ParseDocument[Player](r.renderer, string(rec.raw))
	p.Body = doc.Markdown
	p.ContentHTML = doc.HTML
	r.normalizer.Player(&p, rec.stem)
	return p, doc.FieldErrors, doc.Err
}

func (r *Repository) decodeNews(rec record) (NewsItem, []parser.FieldError, error) {
	n, doc := parser.ParseDocument[NewsItem](r.renderer, string(rec.raw))
	n.Body = doc.Markdown
	n.ContentHTML = doc.HTML
	r.normalizer.News(&n, rec.stem)
	return n, doc.FieldErrors, doc.Err
}

func toEntities[T Entity](res Result[T], err error) (Result[Entity], error) {
	return Result[Entity]{Items: Entities(res.Items), Warnings: res.Warnings}, err
}

package registry

import (
	"context"
	"errors"
	"fmt"
	"heritage/internal/config"
	"heritage/pkg/cache"
	"heritage/pkg/domain"
	"heritage/pkg/logger"
	"heritage/pkg/serrors"
	"heritage/pkg/storage"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultSitesPageSize     = 50
	DefaultCountriesPageSize = 20
)

// Options configure page sizes and telemetry. Zero values fall back to the
// defaults and to the global OpenTelemetry providers.
type Options struct {
	// SitesPageSize is the number of sites per page in listings and searches.
	SitesPageSize uint
	// CountriesPageSize is the number of countries per page.
	CountriesPageSize uint
	// MeterProvider records mutation and search counters.
	MeterProvider metric.MeterProvider
	// TracerProvider records a span per operation.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SitesPageSize:     cfg.Catalog.SitesPageSize,
		CountriesPageSize: cfg.Catalog.CountriesPageSize,
	}
}

// registry is the concrete implementation of the Registry interface.
type registry struct {
	options   Options
	storage   storage.Storage
	choices   cache.ChoicesCache
	telemetry *telemetry
}

// New creates a Registry backed by the provided storage. choices may be nil,
// in which case choice lists are always read from storage.
func New(storage storage.Storage, choices cache.ChoicesCache, options Options) (Registry, error) {
	if options.SitesPageSize == 0 {
		options.SitesPageSize = DefaultSitesPageSize
	}
	if options.CountriesPageSize == 0 {
		options.CountriesPageSize = DefaultCountriesPageSize
	}
	if choices == nil {
		choices = cache.Noop{}
	}

	t, err := newTelemetry(options.MeterProvider, options.TracerProvider)
	if err != nil {
		return nil, fmt.Errorf("could not create registry instruments: %w", err)
	}

	return &registry{
		options:   options,
		storage:   storage,
		choices:   choices,
		telemetry: t,
	}, nil
}

func (r *registry) Stats(ctx context.Context) (*Stats, error) {
	sites, err := r.storage.CountSites(ctx, domain.SiteFilter{})
	if err != nil {
		return nil, fmt.Errorf("could not count sites: %w", err)
	}
	countries, err := r.storage.CountCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count countries: %w", err)
	}

	return &Stats{Sites: sites, Countries: countries}, nil
}

func (r *registry) Sites(ctx context.Context, page string) (*domain.Page[domain.HeritageSite], error) {
	return r.sitesPage(ctx, domain.SiteFilter{}, page)
}

// sitesPage counts the matches first so that the requested page can be
// checked against the number of pages before fetching it.
func (r *registry) sitesPage(ctx context.Context,
	filter domain.SiteFilter,
	page string) (*domain.Page[domain.HeritageSite], error) {
	total, err := r.storage.CountSites(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not count sites: %w", err)
	}

	number, err := resolvePage(page, r.options.SitesPageSize, total)
	if err != nil {
		return nil, err
	}

	out := &domain.Page[domain.HeritageSite]{Number: number, Size: r.options.SitesPageSize, Total: total}
	if total == 0 {
		out.Items = []domain.HeritageSite{}

		return out, nil
	}

	out.Items, err = r.storage.Sites(ctx, filter, out.Size, out.Offset())
	if err != nil {
		return nil, fmt.Errorf("could not get sites: %w", err)
	}

	return out, nil
}

func (r *registry) Site(ctx context.Context, id domain.SiteID) (*domain.HeritageSite, error) {
	site, err := r.storage.SiteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get site: %w", err)
	}
	if site == nil {
		return nil, serrors.With(serrors.ErrNotFound, "heritage site not found")
	}

	return site, nil
}

func (r *registry) CreateSite(ctx context.Context, in domain.SiteInput) (site *domain.HeritageSite, err error) {
	ctx, end := r.telemetry.start(ctx, "CreateSite")
	defer end(&err)
	defer func() { r.telemetry.mutation(ctx, "create_site", err) }()

	in = normalizeInput(in)
	errs := serrors.FieldErrors{}
	validateFields(in, errs)

	err = r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := validateReferences(ctx, tx, 0, in, errs); err != nil {
			return err
		}
		if err := errs.Err("invalid heritage site"); err != nil {
			return err
		}

		id, err := tx.StoreSite(ctx, in.Site(0))
		if err != nil {
			return duplicateAsValidation(err)
		}
		if err := tx.ReplaceJurisdictions(ctx, id, in.CountryIDs); err != nil {
			return fmt.Errorf("could not store jurisdictions: %w", err)
		}

		site, err = tx.SiteByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get stored site: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not create site: %w", err)
	}

	logger.Info(ctx, "heritage site created", zap.Int64("siteID", int64(site.ID)), zap.String("name", site.Name))

	return site, nil
}

func (r *registry) UpdateSite(ctx context.Context,
	id domain.SiteID,
	in domain.SiteInput) (site *domain.HeritageSite, err error) {
	ctx, end := r.telemetry.start(ctx, "UpdateSite")
	defer end(&err)
	defer func() { r.telemetry.mutation(ctx, "update_site", err) }()

	in = normalizeInput(in)
	errs := serrors.FieldErrors{}
	validateFields(in, errs)

	err = r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.SiteByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get site: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "heritage site not found")
		}

		if err := validateReferences(ctx, tx, id, in, errs); err != nil {
			return err
		}
		if err := errs.Err("invalid heritage site"); err != nil {
			return err
		}

		updated, err := tx.UpdateSite(ctx, in.Site(id))
		if err != nil {
			return duplicateAsValidation(err)
		}
		if !updated {
			return serrors.With(serrors.ErrNotFound, "heritage site not found")
		}
		if err := tx.ReplaceJurisdictions(ctx, id, in.CountryIDs); err != nil {
			return fmt.Errorf("could not replace jurisdictions: %w", err)
		}

		site, err = tx.SiteByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get updated site: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not update site: %w", err)
	}

	logger.Info(ctx, "heritage site updated", zap.Int64("siteID", int64(id)))

	return site, nil
}

func (r *registry) DeleteSite(ctx context.Context, id domain.SiteID) (err error) {
	ctx, end := r.telemetry.start(ctx, "DeleteSite")
	defer end(&err)
	defer func() { r.telemetry.mutation(ctx, "delete_site", err) }()

	err = r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteSite(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete site: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, "heritage site not found")
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not delete site: %w", err)
	}

	logger.Info(ctx, "heritage site deleted", zap.Int64("siteID", int64(id)))

	return nil
}

func (r *registry) Search(ctx context.Context,
	filter domain.SiteFilter,
	page string) (res *domain.Page[domain.HeritageSite], err error) {
	ctx, end := r.telemetry.start(ctx, "Search")
	defer end(&err)

	filter = filter.Normalize()
	r.telemetry.search(ctx, !filter.IsEmpty())

	return r.sitesPage(ctx, filter, page)
}

func (r *registry) SearchChoices(ctx context.Context) (*domain.FilterChoices, error) {
	cached, err := r.choices.Choices(ctx)
	if err != nil {
		logger.Warn(ctx, "could not read cached choices", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	var choices domain.FilterChoices
	if choices.Categories, err = r.storage.Categories(ctx); err != nil {
		return nil, fmt.Errorf("could not get categories: %w", err)
	}
	if choices.Regions, err = r.storage.Regions(ctx); err != nil {
		return nil, fmt.Errorf("could not get regions: %w", err)
	}
	if choices.SubRegions, err = r.storage.SubRegions(ctx); err != nil {
		return nil, fmt.Errorf("could not get sub-regions: %w", err)
	}
	if choices.IntermediateRegions, err = r.storage.IntermediateRegions(ctx); err != nil {
		return nil, fmt.Errorf("could not get intermediate regions: %w", err)
	}
	if choices.Countries, err = r.storage.Countries(ctx, 0, 0); err != nil {
		return nil, fmt.Errorf("could not get countries: %w", err)
	}

	if err := r.choices.StoreChoices(ctx, choices); err != nil {
		logger.Warn(ctx, "could not cache choices", zap.Error(err))
	}

	return &choices, nil
}

func (r *registry) SiteForm(ctx context.Context) (*domain.FilterChoices, error) {
	choices, err := r.SearchChoices(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FilterChoices{
		Categories: choices.Categories,
		Countries:  choices.Countries,
	}, nil
}

func (r *registry) Countries(ctx context.Context, page string) (*domain.Page[domain.CountryArea], error) {
	total, err := r.storage.CountCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count countries: %w", err)
	}

	number, err := resolvePage(page, r.options.CountriesPageSize, total)
	if err != nil {
		return nil, err
	}

	out := &domain.Page[domain.CountryArea]{Number: number, Size: r.options.CountriesPageSize, Total: total}
	if total == 0 {
		out.Items = []domain.CountryArea{}

		return out, nil
	}

	out.Items, err = r.storage.Countries(ctx, out.Size, out.Offset())
	if err != nil {
		return nil, fmt.Errorf("could not get countries: %w", err)
	}

	return out, nil
}

func (r *registry) Country(ctx context.Context, id domain.CountryAreaID) (*CountryDetail, error) {
	country, err := r.storage.CountryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get country: %w", err)
	}
	if country == nil {
		return nil, serrors.With(serrors.ErrNotFound, "country or area not found")
	}

	sites, err := r.storage.SitesByCountry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get country sites: %w", err)
	}

	return &CountryDetail{
		Country:      *country,
		LocationName: country.Location.Name(),
		Sites:        sites,
	}, nil
}

func (r *registry) DeleteReference(ctx context.Context, kind domain.ReferenceKind, id int64) (err error) {
	ctx, end := r.telemetry.start(ctx, "DeleteReference")
	defer end(&err)
	defer func() { r.telemetry.mutation(ctx, "delete_"+string(kind), err) }()

	err = r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		exists, err := tx.ReferenceExists(ctx, kind, id)
		if err != nil {
			return fmt.Errorf("could not check %s: %w", kind, err)
		}
		if !exists {
			return serrors.With(serrors.ErrNotFound, "%s %d not found", kind, id)
		}

		dependents, err := tx.ReferenceDependents(ctx, kind, id)
		if err != nil {
			return fmt.Errorf("could not count %s dependents: %w", kind, err)
		}
		if len(dependents) > 0 {
			return serrors.With(serrors.ErrReferentialIntegrity,
				"cannot delete %s %d: %s", kind, id, describeDependents(dependents))
		}

		if _, err := tx.DeleteReference(ctx, kind, id); err != nil {
			if errors.Is(err, storage.ErrReferenced) {
				return serrors.Wrap(serrors.ErrReferentialIntegrity, err, "cannot delete %s %d", kind, id)
			}

			return fmt.Errorf("could not delete %s: %w", kind, err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not delete reference: %w", err)
	}

	if err := r.choices.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "could not invalidate cached choices", zap.Error(err))
	}
	logger.Info(ctx, "reference row deleted", zap.String("kind", string(kind)), zap.Int64("id", id))

	return nil
}

func describeDependents(dependents []domain.Dependent) string {
	parts := make([]string, 0, len(dependents))
	for _, d := range dependents {
		parts = append(parts, fmt.Sprintf("referenced by %d %s row(s)", d.Count, d.Table))
	}

	return strings.Join(parts, ", ")
}

// duplicateAsValidation reports a unique violation on insert or update as a
// site name conflict. It covers a concurrent writer taking the name between
// validation and the write.
func duplicateAsValidation(err error) error {
	if errors.Is(err, storage.ErrDuplicate) {
		errs := serrors.FieldErrors{}
		errs.Add(FieldSiteName, "Heritage site with this Site name already exists.")

		return errs.Err("invalid heritage site")
	}

	return fmt.Errorf("could not store site: %w", err)
}

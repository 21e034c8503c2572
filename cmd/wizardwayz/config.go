package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/wizardwayz/portal/modules/pillars"
	"github.com/wizardwayz/portal/pkg/environment"
	"github.com/wizardwayz/portal/pkg/httpserver"
	"github.com/wizardwayz/portal/pkg/pillar"
)

type appConfig struct {
	Env         environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name        string                  `env:"APP_NAME" envDefault:"Wizardwayz"`
	Catalog     string                  `env:"PILLAR_CATALOG"`
	StoreURL    string                  `env:"MERCHANDISE_STORE_URL"`
	TrustProxy  bool                    `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	DatastarURL string                  `env:"DATASTAR_URL"`

	Pillars pillars.Config
	HTTP    httpserver.Config
}

// loadRegistry builds the registry from the configured catalog file, or the
// embedded catalog when none is set. The store URL override replaces the
// destination of the catalog's outbound pillar and is ignored for catalogs
// without one.
func loadRegistry(cfg appConfig) (*pillar.Registry, error) {
	var (
		catalog pillar.Catalog
		err     error
	)
	if cfg.Catalog != "" {
		catalog, err = pillar.LoadCatalog(cfg.Catalog)
	} else {
		catalog, err = pillar.DefaultCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if keys := slices.Sorted(maps.Keys(catalog.Outbound)); cfg.StoreURL != "" && len(keys) > 0 {
		catalog = catalog.WithOutbound(keys[0], cfg.StoreURL)
	}

	reg, err := pillar.NewRegistry(catalog)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	return reg, nil
}

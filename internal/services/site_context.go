package services

import (
	"strings"

	"github.com/azigroup/website/internal/models"
	"go.uber.org/zap"
)

// AssetStore resolves stored media paths.
type AssetStore interface {
	URL(path string) string
	Exists(path string) bool
}

// SiteContext is the data every rendered page needs.
type SiteContext struct {
	NavigationLogo *models.NavigationLogo
	NavbarLogoURL  string
	Companies      []models.Company
	Site           SiteInfo
}

// SiteContextService builds the per-request SiteContext.
type SiteContextService struct {
	content  *ContentService
	settings *SettingsService
	assets   AssetStore
	log      *zap.Logger
}

func NewSiteContextService(content *ContentService, settings *SettingsService, assets AssetStore, log *zap.Logger) *SiteContextService {
	return &SiteContextService{content: content, settings: settings, assets: assets, log: log}
}

// Build never fails: lookup errors are logged and the affected value is left
// empty.
func (s *SiteContextService) Build() SiteContext {
	var ctx SiteContext

	logo, err := s.content.ActiveNavigationLogo()
	if err != nil {
		s.log.Warn("Failed to load navigation logo", zap.Error(err))
	}
	ctx.NavigationLogo = logo

	hero, err := s.content.ActiveHero()
	if err != nil {
		s.log.Warn("Failed to load home page hero", zap.Error(err))
	}

	if hero != nil {
		ctx.NavbarLogoURL = s.resolve(hero.BackgroundImage)
	}
	if ctx.NavbarLogoURL == "" && logo != nil {
		ctx.NavbarLogoURL = s.resolve(logo.Logo)
	}

	companies, err := s.content.ActiveCompanies()
	if err != nil {
		s.log.Warn("Failed to load companies", zap.Error(err))
		companies = []models.Company{}
	}
	ctx.Companies = companies

	site, err := s.settings.SiteInfo()
	if err != nil {
		s.log.Warn("Failed to load site settings", zap.Error(err))
	}
	ctx.Site = site

	return ctx
}

func (s *SiteContextService) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" || !s.assets.Exists(path) {
		return ""
	}
	return s.assets.URL(path)
}

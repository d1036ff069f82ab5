package handlers

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/services"
	"github.com/dustin/go-humanize"
)

// Templates only read fields: everything a page shows is computed here.

type CompanyView struct {
	ID                  uint
	Name                string
	Slug                string
	Description         string
	DetailedDescription string
	Icon                string
	LogoURL             string
	Gradient            string
	Services            []string
	KPIs                []string
	URL                 string
	ProjectImages       []ProjectImageView
}

type ProjectImageView struct {
	ImageURL    string
	Title       string
	Description string
}

type NewsView struct {
	ID          uint
	Title       string
	Slug        string
	Excerpt     string
	ImageURL    string
	URL         string
	Featured    bool
	Date        string
	DateISO     string
	Ago         string
	ContentHTML string
}

type TestimonialView struct {
	Name     string
	Company  string
	Position string
	Content  string
	ImageURL string
	Rating   int
	Stars    string
}

type HeroView struct {
	Title         string
	Subtitle      string
	BackgroundURL string
	Opacity       string
}

type PaginationView struct {
	Number         int
	TotalPages     int
	HasPrevious    bool
	HasNext        bool
	PreviousNumber int
	NextNumber     int
	HasOtherPages  bool
	Range          []int
}

type SearchView struct {
	Empty     bool
	News      []NewsView
	Companies []CompanyView
}

type CompanyLink struct {
	Name string
	URL  string
}

type SiteView struct {
	Name          string
	NavbarLogoURL string
	LogoName      string
	ContactEmail  string
	ContactPhone  string
	Address       string
	FacebookURL   string
	LinkedInURL   string
	Companies     []CompanyLink
	Year          int
}

func newCompanyView(c *models.Company, media models.URLResolver) CompanyView {
	v := CompanyView{
		ID:                  c.ID,
		Name:                c.Name,
		Slug:                c.Slug,
		Description:         c.Description,
		DetailedDescription: c.DetailedDescription,
		Icon:                c.Icon,
		LogoURL:             media.URL(c.Logo),
		Gradient:            c.Gradient,
		Services:            c.ServicesList(),
		KPIs:                c.KPIsList(),
		URL:                 c.URL(),
	}
	if v.Gradient == "" {
		v.Gradient = models.DefaultGradient
	}
	for _, img := range c.ProjectImages {
		v.ProjectImages = append(v.ProjectImages, ProjectImageView{
			ImageURL:    media.URL(img.Image),
			Title:       img.Title,
			Description: img.Description,
		})
	}
	return v
}

func newCompanyViews(companies []models.Company, media models.URLResolver) []CompanyView {
	out := make([]CompanyView, 0, len(companies))
	for i := range companies {
		out = append(out, newCompanyView(&companies[i], media))
	}
	return out
}

func newNewsView(n *models.News, media models.URLResolver) NewsView {
	return NewsView{
		ID:       n.ID,
		Title:    n.Title,
		Slug:     n.Slug,
		Excerpt:  n.GetExcerpt(),
		ImageURL: n.GetImageURL(media),
		URL:      n.URL(),
		Featured: n.Featured,
		Date:     frenchDate(n.CreatedAt),
		DateISO:  n.CreatedAt.UTC().Format(time.RFC3339),
		Ago:      relativeTime(n.CreatedAt, time.Now()),
	}
}

func newNewsViews(news []models.News, media models.URLResolver) []NewsView {
	out := make([]NewsView, 0, len(news))
	for i := range news {
		out = append(out, newNewsView(&news[i], media))
	}
	return out
}

func newTestimonialViews(list []models.Testimonial, media models.URLResolver) []TestimonialView {
	out := make([]TestimonialView, 0, len(list))
	for i := range list {
		t := &list[i]
		out = append(out, TestimonialView{
			Name:     t.Name,
			Company:  t.Company,
			Position: t.Position,
			Content:  t.Content,
			ImageURL: media.URL(t.Image),
			Rating:   t.Rating,
			Stars:    t.Stars(),
		})
	}
	return out
}

// newHeroView falls back to the default banner when no hero is active.
func newHeroView(h *models.HomePageHero, media models.URLResolver) HeroView {
	if h == nil {
		return HeroView{
			Title:    models.DefaultHeroTitle,
			Subtitle: models.DefaultHeroSubtitle,
			Opacity:  formatOpacity(models.DefaultHeroOpacity),
		}
	}
	return HeroView{
		Title:         h.Title,
		Subtitle:      h.Subtitle,
		BackgroundURL: media.URL(h.BackgroundImage),
		Opacity:       formatOpacity(h.OverlayOpacity),
	}
}

func newPaginationView(p services.Page) PaginationView {
	return PaginationView{
		Number:         p.Number,
		TotalPages:     p.TotalPages,
		HasPrevious:    p.HasPrevious,
		HasNext:        p.HasNext,
		PreviousNumber: p.PreviousNumber,
		NextNumber:     p.NextNumber,
		HasOtherPages:  p.HasOtherPages(),
		Range:          p.Range(),
	}
}

func newSiteView(ctx *services.SiteContext) SiteView {
	v := SiteView{
		Name:          ctx.Site.Name,
		NavbarLogoURL: ctx.NavbarLogoURL,
		ContactEmail:  ctx.Site.ContactEmail,
		ContactPhone:  ctx.Site.ContactPhone,
		Address:       ctx.Site.Address,
		FacebookURL:   ctx.Site.FacebookURL,
		LinkedInURL:   ctx.Site.LinkedInURL,
		Companies:     make([]CompanyLink, 0, len(ctx.Companies)),
		Year:          time.Now().Year(),
	}
	if v.Name == "" {
		v.Name = "AZI GROUP"
	}
	v.LogoName = v.Name
	if ctx.NavigationLogo != nil {
		v.LogoName = ctx.NavigationLogo.Name
	}
	for i := range ctx.Companies {
		v.Companies = append(v.Companies, CompanyLink{Name: ctx.Companies[i].Name, URL: ctx.Companies[i].URL()})
	}
	return v
}

func formatOpacity(o float64) string {
	return strconv.FormatFloat(o, 'f', -1, 64)
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func frenchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

var frenchMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "à l'instant", DivBy: time.Second},
	{D: 2 * time.Second, Format: "%s 1 seconde", DivBy: 1},
	{D: time.Minute, Format: "%s %d secondes", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minute", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutes", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 heure", DivBy: 1},
	{D: humanize.Day, Format: "%s %d heures", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 jour", DivBy: 1},
	{D: humanize.Week, Format: "%s %d jours", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s 1 semaine", DivBy: 1},
	{D: humanize.Month, Format: "%s %d semaines", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s 1 mois", DivBy: 1},
	{D: humanize.Year, Format: "%s %d mois", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s 1 an", DivBy: 1},
	{D: humanize.LongTime, Format: "%s %d ans", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "%s longtemps", DivBy: 1},
}

// relativeTime renders t relative to now in French ("il y a 3 jours").
func relativeTime(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, "il y a", "dans", frenchMagnitudes)
}

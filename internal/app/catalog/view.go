package catalog

import (
	"regexp"
	"strings"

	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/tours"
)

// Default copy used when the copy document has no value for a key.
const (
	defaultResults      = "Найдено {count} туров"
	defaultEmpty        = "Ничего не найдено. Попробуйте изменить фильтры."
	defaultLoadError    = "Не удалось загрузить туры. Попробуйте позже."
	defaultPriceTo      = "До {value} EUR"
	defaultChipPriceTo  = "до {value} EUR"
	defaultPeriodHolder = "Выберите даты"
	defaultSummaryAll   = "Все туры"
	defaultClearFilter  = "Удалить фильтр: {label}"
	defaultCardDays     = "дней"
	defaultCardDetails  = "Подробнее"
	defaultCardImageAlt = "Tour"
	detailsLinkPrefix   = "./tour.html?id="
	badgeBaseClass      = "c-badge"
)

var badgeClasses = map[string]string{
	"popular":    "",
	"best-value": "c-badge--warn",
	"top-rated":  "c-badge--secondary",
	"romantic":   "c-badge--secondary",
	"new":        "c-badge--success",
	"cultural":   "",
	"adventure":  "c-badge--secondary",
	"seasonal":   "c-badge--warn",
	"city-break": "",
	"family":     "c-badge--success",
}

// View is the rendered catalog. Rendering the same state twice yields an equal View.
type View struct {
	Lang        string              `json:"lang"`
	Loaded      bool                `json:"loaded"`
	LoadFailed  bool                `json:"loadFailed"`
	Controls    Controls            `json:"controls"`
	Filters     tours.FilterState   `json:"filters"`
	PriceMax    float64             `json:"priceMax"`
	PriceLabel  string              `json:"priceLabel"`
	PeriodLabel string              `json:"periodLabel"`
	Status      string              `json:"status,omitempty"`
	Message     string              `json:"message,omitempty"`
	Empty       bool                `json:"empty"`
	Count       int                 `json:"count"`
	Cards       []Card              `json:"cards"`
	Summary     []Chip              `json:"summary"`
	Options     map[string][]Option `json:"options"`
}

type Card struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Country      string   `json:"country,omitempty"`
	Badge        *Badge   `json:"badge,omitempty"`
	Meta         string   `json:"meta"`
	Link         string   `json:"link"`
	DetailsLabel string   `json:"detailsLabel"`
	Image        *Picture `json:"image,omitempty"`
}

type Badge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Class string `json:"class"`
}

// Picture is the card media with modern-format alternatives for .jpg sources.
type Picture struct {
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	AVIF string `json:"avif,omitempty"`
	WebP string `json:"webp,omitempty"`
}

// Chip is an entry of the active-filters summary. Clearable chips carry the filter key.
type Chip struct {
	Key       string `json:"key,omitempty"`
	Label     string `json:"label"`
	AriaLabel string `json:"ariaLabel,omitempty"`
	Clearable bool   `json:"clearable"`
}

func buildCard(tour tours.Tour, lang string, doc *i18n.Copy) Card {
	cardCopy := doc.Block("tourCard", lang)
	title := tour.Title.Get(lang)
	card := Card{
		ID:           string(tour.ID),
		Title:        title,
		Description:  tour.ShortDescription.Get(lang),
		Country:      tour.Location.Country.Get(lang),
		Meta:         formatNumber(float64(tour.Days)) + " " + cardCopy.String("days", defaultCardDays) + " · " + formatNumber(tour.Rating) + " ★ · €" + formatNumber(tour.PriceEUR),
		Link:         detailsLinkPrefix + string(tour.ID),
		DetailsLabel: cardCopy.String("details", defaultCardDetails),
	}
	if len(tour.Badges) > 0 {
		key := tour.Badges[0]
		class := badgeBaseClass
		if extra := badgeClasses[key]; extra != "" {
			class += " " + extra
		}
		card.Badge = &Badge{Key: key, Label: doc.Badge(key, lang), Class: class}
	}
	if len(tour.Images) > 0 && tour.Images[0] != "" {
		alt := title
		if alt == "" {
			alt = defaultCardImageAlt
		}
		card.Image = buildPicture(tour.Images[0], alt)
	}
	return card
}

var jpgSuffix = regexp.MustCompile(`(?i)\.jpg$`)

func buildPicture(src, alt string) *Picture {
	p := &Picture{Src: src, Alt: alt}
	if strings.HasSuffix(strings.ToLower(src), ".jpg") {
		p.AVIF = jpgSuffix.ReplaceAllString(src, ".avif")
		p.WebP = jpgSuffix.ReplaceAllString(src, ".webp")
	}
	return p
}

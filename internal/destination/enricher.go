package destination

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultConcurrency = 4
	fixedOpeningHours  = "09:00-18:00"
	variableHours      = "Varies"
)

// Writer generates free text from a prompt. Implementations may be slow or
// unavailable; the Enricher treats every error as "no text".
type Writer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Enricher attaches descriptions, opening hours and lookup links to catalog POIs.
type Enricher struct {
	writer      Writer
	concurrency int
	log         *slog.Logger
}

// NewEnricher constructs an Enricher. A nil writer means every description
// comes from the fallback template.
func NewEnricher(writer Writer, concurrency int, log *slog.Logger) *Enricher {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = slog.Default()
	}
	return &Enricher{writer: writer, concurrency: concurrency, log: log}
}

// Enrich returns an enriched copy of poi. It never fails: any writer error
// is logged and replaced with the fallback description.
func (e *Enricher) Enrich(ctx context.Context, destination string, poi POI) EnrichedPOI {
	return enriched(destination, poi, e.describe(ctx, poi))
}

// enriched assembles an EnrichedPOI around the given description.
func enriched(destination string, poi POI, description string) EnrichedPOI {
	return EnrichedPOI{
		POI:          poi,
		Destination:  destination,
		Description:  description,
		OpeningHours: openingHours(poi.Category),
		Website:      "https://www.google.com/search?q=" + url.QueryEscape(destination) + "+" + url.QueryEscape(poi.Name),
		MapLink:      "https://www.google.com/maps/search/" + url.QueryEscape(poi.Name) + "+" + url.QueryEscape(destination),
	}
}

// EnrichAll enriches pois for destination, running up to the configured
// number of writer calls at once. Output order matches input order.
func (e *Enricher) EnrichAll(ctx context.Context, destination string, pois []POI) ([]EnrichedPOI, []string) {
	out := make([]EnrichedPOI, len(pois))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, p := range pois {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					e.log.Error("enrich panicked", "destination", destination, "poi", p.Name, "recover", r)
					out[i] = enriched(destination, p, FallbackDescription(p))
				}
			}()
			out[i] = e.Enrich(gCtx, destination, p)
			return nil
		})
	}
	_ = g.Wait()

	return out, []string{fmt.Sprintf("Enricher: found %d POIs for %s.", len(pois), destination)}
}

func (e *Enricher) describe(ctx context.Context, poi POI) string {
	if e.writer == nil {
		return FallbackDescription(poi)
	}

	prompt := fmt.Sprintf("Write a friendly 2-sentence travel description for %s at %s.", poi.Name, poi.Address)
	text, err := e.writer.Generate(ctx, prompt)
	if err != nil {
		e.log.Warn("description generation failed, using fallback", "poi", poi.Name, "err", err)
		return FallbackDescription(poi)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		e.log.Warn("description generation returned no text, using fallback", "poi", poi.Name)
		return FallbackDescription(poi)
	}
	return text
}

// FallbackDescription builds a deterministic description from the POI's own fields.
func FallbackDescription(poi POI) string {
	category := string(poi.Category)
	if category == "" {
		category = "attraction"
	}
	return fmt.Sprintf(
		"%s - %s located at %s. Estimated visit time: %s hours. Rating: %s. Tip: Best visited in the morning.",
		poi.Name,
		cases.Title(language.English).String(category),
		poi.Address,
		strconv.FormatFloat(poi.Hours, 'f', -1, 64),
		strconv.FormatFloat(poi.Rating, 'f', -1, 64),
	)
}

func openingHours(c Category) string {
	if c == CategoryMuseum || c == CategorySight {
		return fixedOpeningHours
	}
	return variableHours
}

// Package recipeparser extracts recipe data from arbitrary web pages.
//
// A page is fetched once, parsed once, and then offered to a fixed pipeline of
// extraction strategies: schema.org linked data, embedded client-state JSON,
// schema.org microdata, and finally an HTML heuristic. Earlier strategies win
// per field; later ones only fill gaps.
package recipeparser

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHTML       = "text/html,application/xhtml+xml"
	maxRedirects     = 10
)

// MaxBodyBytes caps how much of a page is read; the rest is ignored.
const MaxBodyBytes = 5 << 20

// Page is a fetched document shared by every strategy.
type Page struct {
	URL  string
	HTML string
	Doc  *goquery.Document

	log *zap.Logger
}

func (p *Page) debug(msg string, err error) {
	if p.log == nil {
		return
	}
	if err != nil {
		p.log.Debug(msg, zap.String("url", p.URL), zap.Error(err))
		return
	}
	p.log.Debug(msg, zap.String("url", p.URL))
}

// Strategy is one named extraction pass.
type Strategy struct {
	Name    string
	Extract func(*Page) ParsedRecipe
}

// Parser fetches pages and runs the extraction pipeline. It is safe for
// concurrent use.
type Parser struct {
	client     *resty.Client
	timeout    time.Duration
	userAgent  string
	rules      Rules
	logger     *zap.Logger
	structured []Strategy
	fallback   Strategy
}

// Option configures a Parser.
type Option func(*Parser)

// WithTimeout bounds each fetch. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Parser) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithUserAgent overrides the desktop browser user agent.
func WithUserAgent(ua string) Option {
	return func(p *Parser) {
		if ua != "" {
			p.userAgent = ua
		}
	}
}

// WithRules replaces the plausibility rules and selector scopes.
func WithRules(r Rules) Option {
	return func(p *Parser) { p.rules = r }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New builds a Parser with defaults overridden by opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		rules:     DefaultRules(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = resty.New().
		SetTimeout(p.timeout).
		SetHeader("User-Agent", p.userAgent).
		SetHeader("Accept", acceptHTML).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetRetryCount(0).
		SetDoNotParseResponse(true).
		SetLogger(p.logger.Sugar())

	p.structured = []Strategy{
		{Name: "linked-data", Extract: extractLinkedData},
		{Name: "client-state", Extract: extractClientState},
		{Name: "microdata", Extract: extractMicrodata},
	}
	p.fallback = Strategy{Name: "html", Extract: htmlExtractor{rules: p.rules}.extract}
	return p
}

// Parse fetches url and extracts a recipe. Every error it returns is an
// *Error whose message is suitable for end users.
func (p *Parser) Parse(ctx context.Context, url string) (*ParsedRecipe, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		p.logger.Debug("recipe fetch failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return p.ParseHTML(url, body)
}

// ParseHTML runs the extraction pipeline over an already fetched body.
func (p *Parser) ParseHTML(url string, body []byte) (*ParsedRecipe, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindNoRecipeFound, Message: msgNoRecipeFound, Err: err}
	}
	page := &Page{URL: url, HTML: string(body), Doc: doc, log: p.logger}

	var out ParsedRecipe
	for _, s := range p.structured {
		if filled := out.Fill(s.Extract(page)); len(filled) > 0 {
			p.logger.Debug("strategy contributed", zap.String("url", url), zap.String("strategy", s.Name), zap.Strings("fields", filled))
		}
	}

	if out.Name == "" || len(out.Ingredients) == 0 {
		if filled := out.Fill(p.fallback.Extract(page)); len(filled) > 0 {
			p.logger.Debug("strategy contributed", zap.String("url", url), zap.String("strategy", p.fallback.Name), zap.Strings("fields", filled))
		}
	}

	enrichOpenGraph(doc, &out)

	if !out.HasContent() {
		return nil, noRecipeError()
	}
	return &out, nil
}

func (p *Parser) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, transportError(err)
	}
	raw := res.RawBody()
	if raw == nil {
		return nil, noRecipeError()
	}
	defer raw.Close()
	if !res.IsSuccess() {
		return nil, statusError(res.StatusCode(), res.Status())
	}
	body, err := io.ReadAll(io.LimitReader(raw, MaxBodyBytes))
	if err != nil {
		return nil, transportError(err)
	}
	return body, nil
}

// enrichOpenGraph moves og:image to the front of the image list and uses
// og:title when no name was found.
func enrichOpenGraph(doc *goquery.Document, r *ParsedRecipe) {
	if raw, ok := metaContent(doc, "og:image"); ok {
		if img, ok := normalizeImageURL(raw); ok && (len(r.Images) == 0 || r.Images[0] != img) {
			images := []string{img}
			for _, existing := range r.Images {
				if existing != img {
					images = append(images, existing)
				}
			}
			r.Images = images
		}
	}
	if r.Name == "" {
		if title, ok := metaContent(doc, "og:title"); ok {
			r.Name = truncateName(title)
		}
	}
}

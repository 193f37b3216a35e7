package menu

import (
	"bytes"
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"slugmenu-backend/lib/locations"
	"slugmenu-backend/lib/neterr"
	"slugmenu-backend/lib/restyutil"
	"slugmenu-backend/lib/telemetry"
	"slugmenu-backend/lib/timezone"
)

var tracer = telemetry.Tracer("slugmenu.lib.scrapers.menu")

const defaultBaseUrl = "https://nutrition.sa.ucsc.edu/shortmenu.aspx"

type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// defaults to the nutrition site
	BaseUrl string
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetTimeout(time.Second * 30)
	// the nutrition host serves an incomplete certificate chain, so
	// verification is disabled for this client only. every other
	// upstream keeps standard TLS.
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	restyutil.InstrumentClient(client, tracer, instrumentOutput)

	return Client{
		http:    client,
		baseUrl: baseUrl,
	}
}

var instrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}

// FetchMenu fetches and assembles a location's menu. A zero date
// requests today's menu, anything else is an explicit historical
// request.
func (c Client) FetchMenu(ctx context.Context, loc locations.Location, date time.Time) (Menu, error) {
	ctx, span := tracer.Start(ctx, "client:FetchMenu")
	defer span.End()
	span.SetAttributes(attribute.String("location", loc.Key))

	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sName":        "UC Santa Cruz Dining",
			"locationNum":  loc.Code,
			"locationName": loc.Name,
			"naFlag":       "1",
		}).
		SetCookies([]*http.Cookie{
			{Name: "WebInaCartLocation", Value: loc.Code},
			{Name: "WebInaCartDates", Value: ""},
			{Name: "WebInaCartMeals", Value: ""},
			{Name: "WebInaCartQtys", Value: ""},
			{Name: "WebInaCartRecipes", Value: ""},
		})
	if !date.IsZero() {
		req.SetQueryParam("dtdate", timezone.UpstreamDate(date))
	}

	res, err := req.Get(c.baseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch menu page")
		return nil, neterr.Classify(err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse menu page")
		return nil, err
	}

	return Scrape(doc, loc.Kind), nil
}

package hours

import (
	"bytes"
	"context"
	"crypto/tls"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"

	"slugmenu-backend/lib/neterr"
	"slugmenu-backend/lib/restyutil"
	"slugmenu-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("slugmenu.lib.scrapers.hours")

const defaultBaseUrl = "https://dining.ucsc.edu/eat/"

type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// defaults to the dining hours page
	BaseUrl string
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetTimeout(time.Second * 30)
	// same incomplete-chain situation as the nutrition host, scoped
	// to this client
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
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

// FetchAll fetches and scrapes the hours page for every known
// location.
func (c Client) FetchAll(ctx context.Context) (AllHours, error) {
	ctx, span := tracer.Start(ctx, "client:FetchAll")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.baseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch hours page")
		return nil, neterr.Classify(err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse hours page")
		return nil, err
	}

	return ScrapeAll(doc), nil
}

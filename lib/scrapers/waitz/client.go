package waitz

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"

	"slugmenu-backend/lib/neterr"
	"slugmenu-backend/lib/restyutil"
	"slugmenu-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("slugmenu.lib.scrapers.waitz")

const defaultBaseUrl = "https://waitz.io"

type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// defaults to the public waitz API
	BaseUrl string
}

// NewClient keeps standard TLS: unlike the campus hosts, the feed's
// certificate chain is fine.
func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetTimeout(time.Second * 30)
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

// FetchSnapshot fetches and reshapes both busyness feeds.
func (c Client) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "client:FetchSnapshot")
	defer span.End()

	liveRes, err := c.http.R().
		SetContext(ctx).
		Get(c.baseUrl + "/live/ucsc")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch live feed")
		return Snapshot{}, neterr.Classify(err)
	}
	live, err := ParseLive(liveRes.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode live feed")
		return Snapshot{}, err
	}

	compareRes, err := c.http.R().
		SetContext(ctx).
		Get(c.baseUrl + "/compare/ucsc")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch comparison feed")
		return Snapshot{}, neterr.Classify(err)
	}
	compare, err := ParseCompare(compareRes.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode comparison feed")
		return Snapshot{}, err
	}

	return Snapshot{Live: live, Compare: compare}, nil
}

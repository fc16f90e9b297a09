// Package printer spools order documents to a blob bucket that print stations poll.
package printer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"pizzahouse/config"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/qrcode"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the dependencies for the spool printer
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// SpoolPrinter writes rendered documents to orders/<id>/<kind>-<unixnano>.txt.
// Receipts and delivery slips get a tracking QR code stored next to the text.
type SpoolPrinter struct {
	bucket  *blob.Bucket
	encoder *qrcode.TrackingEncoder
	clock   service.Clock
	logger  *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.Printer, error) {
	cfg := params.Config.Printer

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open print spool %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	encoder := qrcode.NewTrackingEncoder(cfg.TrackingBaseURL, cfg.QRCodeSize, cfg.ErrorCorrectionLevel)

	return NewSpoolPrinter(bucket, encoder, params.Clock, params.Logger), nil
}

func NewSpoolPrinter(bucket *blob.Bucket, encoder *qrcode.TrackingEncoder, clock service.Clock, logger *slog.Logger) *SpoolPrinter {
	return &SpoolPrinter{
		bucket:  bucket,
		encoder: encoder,
		clock:   clock,
		logger:  logger.With(slog.String("component", "printer")),
	}
}

func (p *SpoolPrinter) PrintOrder(ctx context.Context, order *entity.Order, kind service.DocumentKind) error {
	if documentTemplates.Lookup(string(kind)) == nil {
		return errors.Errorf("unknown document kind %q", kind)
	}

	var buf bytes.Buffer
	data := documentData{Order: order, TrackingURL: p.encoder.TrackingURL(order.ID)}
	if err := documentTemplates.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return errors.Wrapf(err, "render %s", kind)
	}

	key := documentKey(order, kind, p.clock.Now().UnixNano())
	if err := p.bucket.WriteAll(ctx, key+".txt", buf.Bytes(), &blob.WriterOptions{
		ContentType: "text/plain; charset=utf-8",
		Metadata:    map[string]string{"order_id": order.ID.String(), "kind": string(kind)},
	}); err != nil {
		return errors.Wrapf(err, "spool %s", key)
	}

	if kind != service.DocumentKitchenOrder {
		png, err := p.encoder.EncodeOrder(order.ID)
		if err != nil {
			return errors.Wrap(err, "encode tracking code")
		}
		if err := p.bucket.WriteAll(ctx, key+".png", png, &blob.WriterOptions{ContentType: "image/png"}); err != nil {
			return errors.Wrapf(err, "spool %s tracking code", key)
		}
	}

	p.logger.DebugContext(ctx, "Document spooled",
		slog.String("orderId", order.ID.String()),
		slog.String("kind", string(kind)),
		slog.String("key", key),
	)

	return nil
}

func documentKey(order *entity.Order, kind service.DocumentKind, nanos int64) string {
	return fmt.Sprintf("orders/%s/%s-%d", order.ID, kind, nanos)
}

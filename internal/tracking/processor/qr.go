package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	qrcode "github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// QRCode renders the tracking URL of an active code as a PNG
func (p *TrackingProcessor) QRCode(ctx context.Context, code string) ([]byte, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code", Value: code})

	target, err := p.store.GetRedirectTarget(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTrackingCodeNotFound
		}
		p.logger.Error(ctx, "failed to resolve tracking code", err)
		return nil, err
	}

	png, err := RenderQRCode(p.TrackingURL(target.Code))
	if err != nil {
		p.logger.Error(ctx, "failed to render qr code", err)
		return nil, err
	}
	return png, nil
}

// RenderQRCode encodes content as a PNG with a transparent background
func RenderQRCode(content string) ([]byte, error) {
	qrc, err := qrcode.New(content)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf},
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(10),
		standard.WithBorderWidth(20),
		standard.WithBgTransparent(),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return buf.Bytes(), nil
}

// Package provider opens the single metrics source the dashboard samples
// each tick.
package provider

import (
	"context"

	"hostdash/internal/collector"
	"hostdash/internal/config"
	"hostdash/internal/errors"
	"hostdash/internal/snapshot"
)

// Provider fills a RecordSize buffer with one sample.
type Provider interface {
	Fill(buf []byte) error
	Close() error
}

var (
	openNative = func(ctx context.Context, cfg collector.CollectorConfig) (Provider, error) {
		return collector.NewSystemCollector(ctx, cfg)
	}
	openLibrary = OpenLibrary
)

// Open creates the provider selected by cfg. It is called once at startup;
// a failure is returned as an ErrProvider error and never retried.
func Open(ctx context.Context, cfg config.Config) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderLibrary:
		p, err := openLibrary(cfg.LibraryPath)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrProvider,
				"Failed to load metrics library",
				"Build the library or set provider: native in .hostdash.yaml")
		}
		return p, nil
	case config.ProviderNative, "":
		p, err := openNative(ctx, cfg.Collector())
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrProvider,
				"Failed to start system collector",
				"Check disk_path and run with HOSTDASH_DEBUG=1 for details")
		}
		return p, nil
	default:
		return nil, errors.New(errors.ErrConfig,
			"Unknown provider "+cfg.Provider,
			"Use provider: native or provider: library")
	}
}

// Sample fills a fresh buffer from p and decodes it.
func Sample(p Provider) (snapshot.Record, snapshot.Report, error) {
	buf := make([]byte, snapshot.RecordSize)
	if err := p.Fill(buf); err != nil {
		return snapshot.Record{}, snapshot.Report{}, errors.Wrap(err, "Failed to read metrics")
	}
	rec, rep, err := snapshot.Decode(buf)
	if err != nil {
		return snapshot.Record{}, snapshot.Report{}, errors.WrapWithCode(err, errors.ErrDecode,
			"Failed to decode metrics record", "")
	}
	return rec, rep, nil
}

// Static replays a fixed byte image. snapdump uses it for raw record files.
type Static struct {
	Raw []byte
}

func (s Static) Fill(buf []byte) error {
	if len(s.Raw) < snapshot.RecordSize {
		return &snapshot.ShortRecordError{Got: len(s.Raw)}
	}
	copy(buf, s.Raw[:snapshot.RecordSize])
	return nil
}

func (Static) Close() error { return nil }

package events

import (
	"log/slog"

	"github.com/fogfish/opts"
)

// DecodeOptions configures envelope decoding.
type DecodeOptions struct {
	strictType bool
	logger     *slog.Logger
}

var (
	// StrictType rejects wire events whose "type" names a different kind than
	// the content type being decoded. The default trusts the content type.
	StrictType = opts.ForName[DecodeOptions, bool]("strictType")

	// WithLogger sets the logger used for decode diagnostics. The default is
	// slog.Default().
	WithLogger = opts.ForName[DecodeOptions, *slog.Logger]("logger")
)

// DecodeOption is a functional option for Decode and DecodeState.
type DecodeOption = opts.Option[DecodeOptions]

func newDecodeOptions(options []DecodeOption) (DecodeOptions, error) {
	o := DecodeOptions{}
	if err := opts.Apply(&o, options); err != nil {
		return o, err
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o, nil
}

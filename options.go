package teafile

import (
	"errors"

	"github.com/arloliu/teafile/internal/options"
	"github.com/arloliu/teafile/section"
	"go.uber.org/zap"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithRegistry makes the decoder dispatch sections to a copy of registry.
// Later changes to registry do not affect the decoder.
func WithRegistry(registry *section.Registry) DecoderOption {
	return options.New(func(d *Decoder) error {
		if registry == nil {
			return errors.New("section registry must not be nil")
		}
		d.registry = registry.Clone()

		return nil
	})
}

// WithLogger sets the logger for debug events of the decode. A nil logger
// disables logging, which is the default.
func WithLogger(logger *zap.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		if logger == nil {
			logger = zap.NewNop()
		}
		d.logger = logger
	})
}

// WithSkipItems decodes the header and sections only. File.Items stays nil
// and the item area is not checked.
func WithSkipItems() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.skipItems = true
	})
}

// WithFieldLayoutValidation controls whether every field of the item section
// must fit inside one record before any record is decoded. Enabled by default.
func WithFieldLayoutValidation(enabled bool) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.validateFields = enabled
	})
}

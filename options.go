package abiencode

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderConfig)

// BatchOption configures a Batch.
type BatchOption func(*batchConfig)

// DefaultMaxArguments is the default argument limit per encoding.
const DefaultMaxArguments = 64

// encoderConfig holds configuration for an Encoder.
type encoderConfig struct {
	checksum bool
	prefix   bool
	maxArgs  int
}

// defaultEncoderConfig returns the default encoder configuration.
func defaultEncoderConfig() *encoderConfig {
	return &encoderConfig{
		checksum: true,
		prefix:   true,
		maxArgs:  DefaultMaxArguments,
	}
}

// WithChecksumValidation enables or disables EIP-55 checksum checks on
// mixed-case address strings. Enabled by default.
func WithChecksumValidation(enabled bool) EncoderOption {
	return func(c *encoderConfig) {
		c.checksum = enabled
	}
}

// WithPrefix controls whether hex output carries the "0x" prefix.
// Enabled by default.
func WithPrefix(enabled bool) EncoderOption {
	return func(c *encoderConfig) {
		c.prefix = enabled
	}
}

// WithMaxArguments sets the maximum number of arguments per encoding.
// Values below 1 are ignored.
func WithMaxArguments(max int) EncoderOption {
	return func(c *encoderConfig) {
		if max > 0 {
			c.maxArgs = max
		}
	}
}

// batchConfig holds configuration for a Batch.
type batchConfig struct {
	concurrency int
	encoder     *Encoder
}

// defaultBatchConfig returns the default batch configuration.
func defaultBatchConfig() *batchConfig {
	return &batchConfig{
		concurrency: 4,
		encoder:     nil,
	}
}

// WithConcurrency sets how many invocations are encoded at once.
// Values below 1 mean sequential encoding.
func WithConcurrency(n int) BatchOption {
	return func(c *batchConfig) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}

// WithEncoder sets the Encoder used for every invocation in the batch.
func WithEncoder(e *Encoder) BatchOption {
	return func(c *batchConfig) {
		c.encoder = e
	}
}

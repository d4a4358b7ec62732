package gate

import (
	"time"

	"github.com/xmidt-org/rtsync/clock"
	"github.com/xmidt-org/rtsync/types"
)

// Config describes a Gate in a JSON-friendly form, for callers that wire
// resource limits from configuration payloads.
type Config struct {
	// Resources is the initial unit count.  Required and positive.
	Resources int `json:"resources"`

	// GetTimeout bounds Get calls made with this configuration.  Zero or
	// absent means wait indefinitely.
	GetTimeout types.Duration `json:"getTimeout"`
}

// Timeout returns the configured Get timeout, mapping an absent value to
// clock.Forever.
func (c Config) Timeout() time.Duration {
	if c.GetTimeout <= 0 {
		return clock.Forever
	}

	return time.Duration(c.GetTimeout)
}

// New constructs the configured Gate.
func (c Config) New(options ...Option) *Gate {
	return New(c.Resources, options...)
}

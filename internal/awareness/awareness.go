// Package awareness implements the agent self-awareness operations:
// identity, knowledge gaps, situational context, session lifecycle,
// experience retrieval, and metacognitive monitoring.
package awareness

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/agent-awareness/internal/store"
)

// Service exposes the awareness operations over an injected store.
type Service struct {
	store   store.Store
	env     EnvSource
	log     *zap.Logger
	entropy *rand.Rand
}

// New creates a Service. A nil env falls back to the host environment;
// a nil logger disables logging.
func New(st store.Store, env EnvSource, log *zap.Logger) *Service {
	if env == nil {
		env = HostEnv{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:   st,
		env:     env,
		log:     log,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

package avatar

import (
	"image"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/halalan-ph/candidate-overview/internal/model"
)

// ImageLoader decodes the image behind a reference.
type ImageLoader func(ref string) (image.Image, error)

// Resolver resolves and caches avatar identities per candidate name.
// It owns its cache; callers reset it with Invalidate when the candidate set
// is replaced.
type Resolver struct {
	logger *zap.Logger
	load   ImageLoader

	mu    sync.Mutex
	cache map[string]*entry
}

type entry struct {
	identity model.AvatarIdentity
	circles  map[int]*image.RGBA // keyed by diameter
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report absorbed image failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithImageLoader replaces the default file loader.
func WithImageLoader(load ImageLoader) Option {
	return func(r *Resolver) {
		if load != nil {
			r.load = load
		}
	}
}

// NewResolver creates a resolver with an empty cache
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		logger: zap.NewNop(),
		load:   LoadImage,
		cache:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the avatar identity for name. When imageRef names a
// readable image the identity carries the decoded photo; any failure falls
// back to the synthetic colour and initials. The first resolution of a name
// is cached and reused until Invalidate.
func (r *Resolver) Resolve(name, imageRef string) model.AvatarIdentity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(name, imageRef).identity
}

// ResolveCandidate is Resolve for a candidate record
func (r *Resolver) ResolveCandidate(c model.Candidate) model.AvatarIdentity {
	return r.Resolve(c.Name, c.ImageRef)
}

// Circle returns the photo of name cropped to a circle of the given diameter,
// or nil when the candidate has no usable photo. Results are cached.
func (r *Resolver) Circle(name, imageRef string, diameter int) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.resolveLocked(name, imageRef)
	if e.identity.Image == nil {
		return nil
	}
	if c, ok := e.circles[diameter]; ok {
		return c
	}
	c := CircleImage(e.identity.Image, diameter)
	e.circles[diameter] = c
	return c
}

// Invalidate drops every cached identity
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Debug("Avatar cache invalidated", zap.Int("entries", len(r.cache)))
	r.cache = make(map[string]*entry)
}

// Len returns the number of cached identities
func (r *Resolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *Resolver) resolveLocked(name, imageRef string) *entry {
	if e, ok := r.cache[name]; ok {
		return e
	}

	identity := model.AvatarIdentity{
		CandidateName: name,
		Color:         ColorFromName(name),
		Initials:      Initials(name),
	}

	if ref := strings.TrimSpace(imageRef); ref != "" {
		img, err := r.load(ref)
		if err != nil {
			r.logger.Debug("Using synthetic avatar",
				zap.String("candidate", name),
				zap.String("image", ref),
				zap.Error(err))
		} else {
			identity.Image = img
		}
	}

	e := &entry{identity: identity, circles: make(map[int]*image.RGBA)}
	r.cache[name] = e
	return e
}

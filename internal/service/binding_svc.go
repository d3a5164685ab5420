package service

import (
	"context"
	"log"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
	"github.com/sagarvizla/indus-creator-portal/internal/repository"
)

// BindingService resolves channel references and manages the one durable
// binding per creator.
type BindingService struct {
	store    BindingStore
	resolver *Resolver
	catalog  CatalogProvider
	cache    *CacheService
}

func NewBindingService(store BindingStore, resolver *Resolver, catalog CatalogProvider, cache *CacheService) *BindingService {
	return &BindingService{store: store, resolver: resolver, catalog: catalog, cache: cache}
}

// Bind resolves the input and stores the binding. The change cap is
// checked before resolution so a creator at the limit gets the limit
// message, never a resolution error (and no lookup quota is spent).
func (s *BindingService) Bind(ctx context.Context, userKey, input string) (*model.ChannelBinding, error) {
	current, err := s.store.CurrentBinding(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if current != nil && current.ChangeCount >= s.store.MaxChanges() {
		return nil, repository.ErrChangeLimitExceeded
	}

	channelID, err := s.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.store.TryBind(ctx, userKey, channelID)
}

// Status returns the creator's binding plus the resolved channel title.
// A title lookup failure is not fatal: the binding is still reported and
// the title arrives on a later read.
func (s *BindingService) Status(ctx context.Context, userKey string) (*model.BindingResponse, error) {
	binding, err := s.store.CurrentBinding(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		return &model.BindingResponse{
			Bound:       false,
			ChangesLeft: s.store.MaxChanges(),
		}, nil
	}

	title, err := s.ChannelTitle(ctx, binding.ChannelID)
	if err != nil {
		log.Printf("channel title lookup failed: %v", err)
		title = ""
	}

	return &model.BindingResponse{
		Bound:        true,
		ChannelID:    binding.ChannelID,
		ChannelTitle: title,
		ChangeCount:  binding.ChangeCount,
		ChangesLeft:  binding.ChangesLeft(),
	}, nil
}

// ChannelTitle resolves a channel's display title, cache-aside.
func (s *BindingService) ChannelTitle(ctx context.Context, channelID string) (string, error) {
	if s.cache != nil {
		if title, err := s.cache.GetChannelTitle(ctx, channelID); err != nil {
			log.Printf("cache: channel title get error: %v", err)
		} else if title != "" {
			return title, nil
		}
	}

	title, err := s.catalog.ChannelTitle(ctx, channelID)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetChannelTitle(ctx, channelID, title); err != nil {
			log.Printf("cache: channel title set error: %v", err)
		}
	}
	return title, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Resource is implemented by the pointer type of every CRUD entity.
type Resource[T any] interface {
	*T
	SetID(id uint)
	Sanitize()
	Validate() error
}

// ResourceService serves plain CRUD entities (artists, locations, stands, contact
// messages). When a cache is configured the list is read through it and
// invalidated on every write.
type ResourceService[T any, PT Resource[T]] struct {
	Name  string
	Repo  ResourceRepo[T]
	Cache Cache
}

func NewResourceService[T any, PT Resource[T]](name string, repo ResourceRepo[T], cache Cache) *ResourceService[T, PT] {
	return &ResourceService[T, PT]{
		Name:  name,
		Repo:  repo,
		Cache: cache,
	}
}

func (s *ResourceService[T, PT]) listKey() string {
	return fmt.Sprintf("pulse:%s:all", s.Name)
}

func (s *ResourceService[T, PT]) List(ctx context.Context) ([]T, error) {
	if s.Cache != nil {
		var cached []T
		hit, err := s.Cache.Get(ctx, s.listKey(), &cached)
		if err != nil {
			logrus.WithError(err).Warnf("cache read failed for %s", s.Name)
		} else if hit {
			return cached, nil
		}
	}

	entities, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []T{}
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, s.listKey(), entities); err != nil {
			logrus.WithError(err).Warnf("cache write failed for %s", s.Name)
		}
	}
	return entities, nil
}

func (s *ResourceService[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	entity, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, s.Name)
	}
	return entity, nil
}

// Create always inserts a new row: any id carried by entity is dropped.
func (s *ResourceService[T, PT]) Create(ctx context.Context, entity *T) error {
	PT(entity).SetID(0)
	PT(entity).Sanitize()
	if err := PT(entity).Validate(); err != nil {
		return validationError(err)
	}
	if err := s.Repo.Create(ctx, entity); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ResourceService[T, PT]) Update(ctx context.Context, id uint, entity *T) error {
	PT(entity).SetID(id)
	PT(entity).Sanitize()
	if err := PT(entity).Validate(); err != nil {
		return validationError(err)
	}
	if err := s.Repo.Update(ctx, entity, id); err != nil {
		return notFound(err, s.Name)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ResourceService[T, PT]) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return notFound(err, s.Name)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ResourceService[T, PT]) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, s.listKey()); err != nil {
		logrus.WithError(err).Warnf("cache invalidation failed for %s", s.Name)
	}
}

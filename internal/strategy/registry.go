package strategy

import (
	"sync"

	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// Registry manages the strategies available to an evaluator.
type Registry interface {
	RegisterStrategy(strategy Strategy) error
	GetStrategy(name types.StrategyType) (Strategy, error)
	ListStrategies() []types.StrategyType
	RemoveStrategy(name types.StrategyType) error
}

// RegistryV1 keeps strategies in registration order.
type RegistryV1 struct {
	strategies map[types.StrategyType]Strategy
	order      []types.StrategyType
	mu         sync.RWMutex
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() Registry {
	return &RegistryV1{
		strategies: make(map[types.StrategyType]Strategy),
		order:      nil,
		mu:         sync.RWMutex{},
	}
}

// NewRegistryFrom creates a registry holding strategies in order.
func NewRegistryFrom(strategies ...Strategy) (Registry, error) {
	r := NewRegistry()
	for _, s := range strategies {
		if err := r.RegisterStrategy(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// NewDefaultRegistry creates a registry holding every built-in strategy.
// It panics if the built-in list holds a duplicate.
func NewDefaultRegistry() Registry {
	r, err := NewRegistryFrom(All()...)
	if err != nil {
		panic(err)
	}

	return r
}

// RegisterStrategy adds a strategy to the registry.
func (r *RegistryV1) RegisterStrategy(strategy Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strategy.Name()
	if _, exists := r.strategies[name]; exists {
		return errors.Newf(errors.ErrCodeStrategyAlreadyExists, "RegisterStrategy: strategy %s already registered", name)
	}

	r.strategies[name] = strategy
	r.order = append(r.order, name)

	return nil
}

// GetStrategy retrieves a strategy by name.
func (r *RegistryV1) GetStrategy(name types.StrategyType) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.strategies[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeStrategyNotFound, "GetStrategy: strategy %s not found", name)
	}

	return strategy, nil
}

// ListStrategies returns the registered strategy names in registration order.
func (r *RegistryV1) ListStrategies() []types.StrategyType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.StrategyType, len(r.order))
	copy(names, r.order)

	return names
}

// RemoveStrategy removes a strategy from the registry.
func (r *RegistryV1) RemoveStrategy(name types.StrategyType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; !exists {
		return errors.Newf(errors.ErrCodeStrategyNotFound, "RemoveStrategy: strategy %s not found", name)
	}

	delete(r.strategies, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

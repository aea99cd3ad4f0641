package mocks

//go:generate mockgen -destination=./mock_strategy.go -package=mocks github.com/rxtech-lab/argo-signal/internal/strategy Strategy
//go:generate mockgen -destination=./mock_strategy_registry.go -package=mocks github.com/rxtech-lab/argo-signal/internal/strategy Registry
//go:generate mockgen -destination=./mock_datasource.go -package=mocks github.com/rxtech-lab/argo-signal/internal/datasource DataSource

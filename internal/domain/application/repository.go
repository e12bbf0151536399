package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// List returns applications in creation order. An empty ownerID
	// means no owner filter.
	List(ctx context.Context, ownerID string) ([]Application, error)
	Save(ctx context.Context, a *Application) error
}

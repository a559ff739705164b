package graph

import (
	"context"

	"github.com/goliatone/go-users-graphql/command"
	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/goliatone/go-users-graphql/query"
	"github.com/goliatone/go-users-graphql/service"
)

// Resolver is the root resolver for GraphQL queries and mutations.
type Resolver struct {
	svc *service.Service
}

// NewResolver creates a new resolver over the given service.
func NewResolver(svc *service.Service) *Resolver {
	return &Resolver{svc: svc}
}

// UserInput mirrors the UserInput input type.
type UserInput struct {
	Name  string
	Email string
}

func (in UserInput) toDomain() types.UserInput {
	return types.UserInput{Name: in.Name, Email: in.Email}
}

// GetUsers resolves Query.getUsers.
func (r *Resolver) GetUsers(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.svc.Queries().UserList.Query(ctx, query.UserListFilter{})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*UserResolver, 0, len(users))
	for _, user := range users {
		out = append(out, &UserResolver{user: user})
	}
	return out, nil
}

// GetUser resolves Query.getUser. A missing user resolves to null.
func (r *Resolver) GetUser(ctx context.Context, args struct{ ID int32 }) (*UserResolver, error) {
	result, err := r.svc.Queries().UserDetail.Query(ctx, query.UserDetailFilter{ID: int64(args.ID)})
	if err != nil {
		return nil, mapError(err)
	}
	if !result.Found {
		return nil, nil
	}
	return &UserResolver{user: *result.User}, nil
}

// Name resolves Query.name.
func (r *Resolver) Name(args struct {
	Firstname string
	Lastname  string
}) string {
	return "My name is " + args.Firstname + " " + args.Lastname
}

// CreateUser resolves Mutation.createUser.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input UserInput }) (*UserResolver, error) {
	created := &types.User{}
	err := r.svc.Commands().UserCreate.Execute(ctx, command.UserCreateInput{
		Input:  args.Input.toDomain(),
		Result: created,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &UserResolver{user: *created}, nil
}

// UpdateUser resolves Mutation.updateUser. A missing user resolves to null.
func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    int32
	Input UserInput
}) (*UserResolver, error) {
	updated := &types.User{}
	err := r.svc.Commands().UserUpdate.Execute(ctx, command.UserUpdateInput{
		ID:     int64(args.ID),
		Input:  args.Input.toDomain(),
		Result: updated,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	return &UserResolver{user: *updated}, nil
}

// UserResolver resolves the User object type.
type UserResolver struct {
	user types.User
}

// ID resolves User.id.
func (u *UserResolver) ID() int32 {
	return int32(u.user.ID)
}

// Name resolves User.name.
func (u *UserResolver) Name() string {
	return u.user.Name
}

// Email resolves User.email.
func (u *UserResolver) Email() string {
	return u.user.Email
}

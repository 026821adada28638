package user

import "context"

// StubUserRepo is an in-memory Repo used in tests.
type StubUserRepo struct {
	users  map[int]User
	nextId int
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: map[int]User{}, nextId: 1}
}

func (r *StubUserRepo) CreateUser(_ context.Context, user User) (int, error) {
	id := r.nextId
	r.nextId++
	user.Id = id
	r.users[id] = user
	return id, nil
}

func (r *StubUserRepo) GetUser(_ context.Context, id int) (User, error) {
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *StubUserRepo) GetUserByUid(_ context.Context, uid string) (User, error) {
	for _, user := range r.users {
		if user.Uid == uid {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *StubUserRepo) UpdateUser(_ context.Context, userId int, user User) (User, error) {
	if _, ok := r.users[userId]; !ok {
		return User{}, ErrUserNotFound
	}
	user.Id = userId
	r.users[userId] = user
	return user, nil
}

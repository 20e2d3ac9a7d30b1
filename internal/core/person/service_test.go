// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package person

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turathdz/turath/pkg/pointer"
)

type fakeRepository struct {
	people map[string]*Person
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{people: make(map[string]*Person)}
}

func (f *fakeRepository) List(context.Context, string, int, int) ([]*Person, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Person, error) {
	return f.people[id], nil
}

func (f *fakeRepository) Create(_ context.Context, person *Person) error {
	f.people[person.ID] = person
	return nil
}

func (f *fakeRepository) ListContributions(context.Context, string) ([]*Contribution, error) {
	return nil, nil
}

/*
TestCreatePerson_GeneratesIdentity verifies UUID and slug defaulting.
*/
func TestCreatePerson_GeneratesIdentity(t *testing.T) {
	service := NewService(newFakeRepository())

	person := &Person{FullName: "Kateb Yacine"}
	require.NoError(t, service.CreatePerson(context.Background(), person))

	assert.NotEmpty(t, person.ID)
	assert.Equal(t, "kateb-yacine", person.Slug)
}

/*
TestCreatePerson_RejectsInvalidYears verifies that a death year preceding
the birth year is a validation error.
*/
func TestCreatePerson_RejectsInvalidYears(t *testing.T) {
	service := NewService(newFakeRepository())

	person := &Person{
		FullName:  "Anonyme",
		BirthYear: pointer.To(1950),
		DeathYear: pointer.To(1900),
	}

	err := service.CreatePerson(context.Background(), person)
	assert.Error(t, err)
}

/*
TestCreatePerson_RequiresName verifies validation on missing names.
*/
func TestCreatePerson_RequiresName(t *testing.T) {
	service := NewService(newFakeRepository())

	err := service.CreatePerson(context.Background(), &Person{})
	assert.Error(t, err)
}

/*
TestRole_IsValid covers the closed role enum.
*/
func TestRole_IsValid(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, Role(role).IsValid(), role)
	}
	assert.False(t, Role("producer").IsValid())
	assert.False(t, Role("").IsValid())
}

package service

import (
	"testing"

	"github.com/matpvl/recipe-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreateDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env)

	_, err := env.tagService.Create(user.ID, &dto.CreateTagRequest{Name: "晚餐"})
	require.NoError(t, err)

	_, err = env.tagService.Create(user.ID, &dto.CreateTagRequest{Name: "晚餐"})
	assert.ErrorIs(t, err, ErrTagNameTaken)
}

func TestTagUpdateRenameConflict(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env)

	_, err := env.tagService.Create(user.ID, &dto.CreateTagRequest{Name: "晚餐"})
	require.NoError(t, err)
	tag, err := env.tagService.Create(user.ID, &dto.CreateTagRequest{Name: "早餐"})
	require.NoError(t, err)

	_, err = env.tagService.Update(tag.ID, user.ID, &dto.UpdateTagRequest{Name: "晚餐"})
	assert.ErrorIs(t, err, ErrTagNameTaken)

	// 改回自身名称不算冲突
	renamed, err := env.tagService.Update(tag.ID, user.ID, &dto.UpdateTagRequest{Name: "早餐"})
	require.NoError(t, err)
	assert.Equal(t, "早餐", renamed.Name)
}

func TestTagOperationsScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env)
	other, err := env.authService.Register(&dto.CreateUserRequest{
		Email: "b@example.com", Password: "secret", Name: "李四",
	})
	require.NoError(t, err)

	tag, err := env.tagService.Create(owner.ID, &dto.CreateTagRequest{Name: "晚餐"})
	require.NoError(t, err)

	_, err = env.tagService.Get(tag.ID, other.ID)
	assert.ErrorIs(t, err, ErrTagNotFound)

	_, err = env.tagService.Update(tag.ID, other.ID, &dto.UpdateTagRequest{Name: "偷改"})
	assert.ErrorIs(t, err, ErrTagNotFound)

	err = env.tagService.Delete(tag.ID, other.ID)
	assert.ErrorIs(t, err, ErrTagNotFound)

	// 不同用户可以各自拥有同名标签
	_, err = env.tagService.Create(other.ID, &dto.CreateTagRequest{Name: "晚餐"})
	assert.NoError(t, err)
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/library-service/internal/domain"
)

func Test_NewUser(t *testing.T) {
	age := int32(20)
	user, err := domain.NewUser("이윤선", &age)

	require.NoError(t, err)
	assert.Equal(t, "이윤선", user.Name)
	require.NotNil(t, user.Age)
	assert.Equal(t, int32(20), *user.Age)
}

func Test_NewUser_AgeIsOptional(t *testing.T) {
	user, err := domain.NewUser("이윤선", nil)

	require.NoError(t, err)
	assert.Nil(t, user.Age)
}

func Test_NewUser_RejectsBlankName(t *testing.T) {
	_, err := domain.NewUser("   ", nil)
	assert.Error(t, err)
}

func Test_NewUser_RejectsNegativeAge(t *testing.T) {
	age := int32(-1)
	_, err := domain.NewUser("이윤선", &age)
	assert.Error(t, err)
}

func Test_User_Rename(t *testing.T) {
	user, err := domain.NewUser("이윤선", nil)
	require.NoError(t, err)

	require.NoError(t, user.Rename(" 수정함 "))
	assert.Equal(t, "수정함", user.Name)

	assert.Error(t, user.Rename("  "))
	assert.Equal(t, "수정함", user.Name)
}

package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func mysqlErr(number uint16) error {
	return &mysql.MySQLError{Number: number, Message: "test"}
}

func TestClassifyWriteError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, ClassifyWriteError(nil))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := ClassifyWriteError(mysqlErr(1452))
		assert.ErrorIs(t, err, ErrConstraintViolation)
	})

	t.Run("duplicate entry", func(t *testing.T) {
		err := ClassifyWriteError(mysqlErr(1062))
		assert.ErrorIs(t, err, ErrConstraintViolation)
	})

	t.Run("keeps the driver error available", func(t *testing.T) {
		orig := mysqlErr(1452)
		err := ClassifyWriteError(orig)
		var me *mysql.MySQLError
		assert.True(t, errors.As(err, &me))
		assert.Equal(t, uint16(1452), me.Number)
	})

	t.Run("other driver errors stay unclassified", func(t *testing.T) {
		orig := mysqlErr(1205) // lock wait timeout
		err := ClassifyWriteError(orig)
		assert.NotErrorIs(t, err, ErrConstraintViolation)
		assert.Equal(t, orig, err)
	})

	t.Run("non-driver errors stay unclassified", func(t *testing.T) {
		orig := errors.New("connection reset")
		assert.Equal(t, orig, ClassifyWriteError(orig))
	})
}

func TestIsDuplicateEntry(t *testing.T) {
	assert.True(t, IsDuplicateEntry(mysqlErr(1062)))
	assert.False(t, IsDuplicateEntry(mysqlErr(1452)))
	assert.False(t, IsDuplicateEntry(errors.New("1062"))) // number in text is not enough
	assert.False(t, IsDuplicateEntry(nil))
}
